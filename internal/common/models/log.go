package models

import "time"

// Log is one application log line persisted to the "logs" collection.
type Log struct {
	ApplicationId string    `bson:"application_id" json:"application_id"`
	Message       string    `bson:"message" json:"message"`
	Caller        string    `bson:"caller,omitempty" json:"caller,omitempty"`
	RequestId     string    `bson:"request_id,omitempty" json:"request_id,omitempty"`
	LeadId        string    `bson:"lead_id,omitempty" json:"lead_id,omitempty"`
	UserId        string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Error         string    `bson:"error,omitempty" json:"error,omitempty"`
	LogLevelId    int       `bson:"log_level_id" json:"log_level_id"`
	CreatedOnUtc  time.Time `bson:"created_on_utc" json:"created_on_utc"`
}
