// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// Default values applied by [NewBuilder].
const (
	DefaultValidatorEndpoint = "tcp://127.0.0.1:4004"
	DefaultLogLevel          = LevelWarn
	DefaultRestAPIEndpoint   = "127.0.0.1:8080"
)

// Config is the finalized, read-only daemon configuration. It is produced
// once per process by [Builder.Build] and may be shared freely between
// goroutines.
type Config struct {
	validatorEndpoint string
	logLevel          Level
	restAPIEndpoint   string
}

// ValidatorEndpoint returns the network address of the validator the daemon
// connects to (e.g. "tcp://127.0.0.1:4004").
func (c *Config) ValidatorEndpoint() string {
	return c.validatorEndpoint
}

// LogLevel returns the verbosity the process logger is configured with.
func (c *Config) LogLevel() Level {
	return c.logLevel
}

// RestAPIEndpoint returns the "host:port" address the REST API binds to.
func (c *Config) RestAPIEndpoint() string {
	return c.restAPIEndpoint
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
func (c *Config) MarshalZerologObject(e *zerolog.Event) {
	e.Str("validator_endpoint", c.validatorEndpoint).
		Stringer("log_level", c.logLevel).
		Str("rest_api_endpoint", c.restAPIEndpoint)
}
