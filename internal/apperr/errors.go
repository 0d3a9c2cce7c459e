// Package apperr holds the error types returned by the upstream clients.
package apperr

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ConfigError means a required setting was not provided, so the operation
// was never attempted.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing configuration: %s", e.Key)
}

// GatewayError is a transport fault or a non-success status from an upstream service.
// StatusCode is zero for transport faults.
type GatewayError struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: upstream status %d: %v", e.Service, e.StatusCode, e.Err)
		}
		return fmt.Sprintf("%s: upstream status %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s: request failed: %v", e.Service, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// ParseError means the upstream answered successfully but the body did not
// have the expected shape.
type ParseError struct {
	Service string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: unexpected response: %v", e.Service, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewConfigError reports a missing setting.
func NewConfigError(key string) error {
	return &ConfigError{Key: key}
}

// NewStatusError reports a non-success HTTP status. detail may be nil.
func NewStatusError(service string, status int, detail error) error {
	return &GatewayError{Service: service, StatusCode: status, Err: detail}
}

// NewTransportError reports a network level fault.
func NewTransportError(service string, err error) error {
	return &GatewayError{Service: service, Err: err}
}

// NewParseError reports a body that could not be mapped.
func NewParseError(service string, err error) error {
	return &ParseError{Service: service, Err: err}
}

// IsConfig reports whether err is a ConfigError.
func IsConfig(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

// IsGateway reports whether err came from an upstream service, including
// malformed responses.
func IsGateway(err error) bool {
	var gw *GatewayError
	if errors.As(err, &gw) {
		return true
	}
	return IsParse(err)
}

// IsParse reports whether err is a ParseError.
func IsParse(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

// StatusCode returns the upstream HTTP status carried by err, or zero.
func StatusCode(err error) int {
	var gw *GatewayError
	if errors.As(err, &gw) {
		return gw.StatusCode
	}
	return 0
}

// Truncate shortens an upstream body for inclusion in error messages.
func Truncate(body []byte, limit int) string {
	s := string(body)
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
