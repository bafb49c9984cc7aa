package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Field names reported by [MissingValueError].
const (
	fieldValidatorEndpoint = "validator_endpoint"
	fieldLogLevel          = "log_level"
	fieldRestAPIEndpoint   = "rest_api_endpoint"
)

// builderFields holds the optional values a [Builder] accumulates. An empty
// string or LevelUnset means the field is absent. Fields are exported so
// mergo can set them.
type builderFields struct {
	ValidatorEndpoint string
	LogLevel          Level
	RestAPIEndpoint   string
}

// Builder accumulates configuration values before they are frozen into a
// [Config]. Builders are values: every override step returns a new Builder
// and leaves its input untouched.
//
// The zero Builder has no values at all and fails to build; use [NewBuilder]
// to start from the documented defaults.
type Builder struct {
	fields builderFields
	err    error
}

// NewBuilder returns a Builder populated with the baseline defaults:
// validator "tcp://127.0.0.1:4004", log level Warn and REST API
// "127.0.0.1:8080".
func NewBuilder() Builder {
	return Builder{
		fields: builderFields{
			ValidatorEndpoint: DefaultValidatorEndpoint,
			LogLevel:          DefaultLogLevel,
			RestAPIEndpoint:   DefaultRestAPIEndpoint,
		},
	}
}

// WithCLIArgs is the method form of [ApplyOverrides].
func (b Builder) WithCLIArgs(opts Options) Builder {
	return ApplyOverrides(b, opts)
}

// ApplyOverrides returns a copy of b with the command-line options applied.
//
// The "connect" and "bind" options replace the validator and REST API
// endpoints when present and leave the prior values alone otherwise. The log
// level is always derived from the "verbose" count, so it never survives
// from an earlier override step.
func ApplyOverrides(b Builder, opts Options) Builder {
	overrides := builderFields{
		LogLevel: levelFromVerbosity(opts.OccurrencesOf(OptionVerbose)),
	}
	if connect, ok := opts.ValueOf(OptionConnect); ok {
		overrides.ValidatorEndpoint = connect
	}
	if bind, ok := opts.ValueOf(OptionBind); ok {
		overrides.RestAPIEndpoint = bind
	}

	next := b
	if err := mergo.Merge(&next.fields, overrides, mergo.WithOverride); err != nil {
		next.err = errors.Join(next.err, fmt.Errorf("error applying cli overrides: %w", err))
	}

	return next
}

// Build finalizes the builder into a [Config].
//
// Fields are checked in the order validator_endpoint, log_level,
// rest_api_endpoint; the first absent one is reported as a
// [*MissingValueError].
func (b Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	if b.fields.ValidatorEndpoint == "" {
		return nil, &MissingValueError{Field: fieldValidatorEndpoint}
	}
	if b.fields.LogLevel == LevelUnset {
		return nil, &MissingValueError{Field: fieldLogLevel}
	}
	if b.fields.RestAPIEndpoint == "" {
		return nil, &MissingValueError{Field: fieldRestAPIEndpoint}
	}

	return &Config{
		validatorEndpoint: b.fields.ValidatorEndpoint,
		logLevel:          b.fields.LogLevel,
		restAPIEndpoint:   b.fields.RestAPIEndpoint,
	}, nil
}
