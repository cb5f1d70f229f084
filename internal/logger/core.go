package logger

import (
	"go.uber.org/zap/zapcore"
)

// DBCore is a custom Zap Core that mirrors entries to the DBLogWriter
type DBCore struct {
	zapcore.Core
	writer *DBLogWriter
	// ids bound through logger.With
	bound entryIDs
}

type entryIDs struct {
	requestID string
	leadID    string
	userID    string
	errMsg    string
}

// merge overlays the ids found in fields on top of ids.
func (ids entryIDs) merge(fields []zapcore.Field) entryIDs {
	for _, f := range fields {
		switch f.Key {
		case "request_id":
			ids.requestID = f.String
		case "lead_id":
			ids.leadID = f.String
		case "user_id":
			ids.userID = f.String
		case "error":
			if err, ok := f.Interface.(error); ok {
				ids.errMsg = err.Error()
			}
		}
	}
	return ids
}

// NewDBCore wraps an existing core (like console logger) and adds DB logging
func NewDBCore(baseCore zapcore.Core, writer *DBLogWriter) zapcore.Core {
	return &DBCore{
		Core:   baseCore,
		writer: writer,
	}
}

// With keeps the DB writer and the bound ids attached to child loggers.
func (c *DBCore) With(fields []zapcore.Field) zapcore.Core {
	return &DBCore{
		Core:   c.Core.With(fields),
		writer: c.writer,
		bound:  c.bound.merge(fields),
	}
}

// Write is called for every log entry
func (c *DBCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	ids := c.bound.merge(fields)

	c.writer.AddLog(LogEntry{
		Level:     entry.Level,
		Message:   entry.Message,
		Caller:    entry.Caller.Function,
		RequestId: ids.requestID,
		LeadId:    ids.leadID,
		UserId:    ids.userID,
		Error:     ids.errMsg,
	})

	return c.Core.Write(entry, fields)
}

// Check decides if we should log this level
func (c *DBCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}
