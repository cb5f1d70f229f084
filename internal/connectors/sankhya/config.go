package sankhya

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL      = "https://api.sandbox.sankhya.com.br"
	DefaultLoginTimeout = 10 * time.Second

	servicePath = "/gateway/v1/mge/service.sbr"

	ServiceLoadRecords = "CRUDServiceProvider.loadRecords"
	ServiceSave        = "DatasetSP.save"
)

var ErrInvalidBaseURL = errors.New("sankhya: invalid base URL")

// Config holds the gateway location and the fixed login headers.
type Config struct {
	BaseURL      string
	Token        string
	AppKey       string
	Username     string
	Password     string
	LoginTimeout time.Duration
}

// Validate fills defaults and checks the base URL.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidBaseURL
	}
	if c.LoginTimeout <= 0 {
		c.LoginTimeout = DefaultLoginTimeout
	}
	return nil
}

// LoginURL is the authentication endpoint.
func (c Config) LoginURL() string {
	return c.BaseURL + "/login"
}

// ServiceURL is the gateway URL for a named service with JSON output.
func (c Config) ServiceURL(serviceName string) string {
	q := url.Values{}
	q.Set("serviceName", serviceName)
	q.Set("outputType", "json")
	return c.BaseURL + servicePath + "?" + q.Encode()
}
