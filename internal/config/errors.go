// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// ErrMissingValue matches every [MissingValueError] via [errors.Is].
var ErrMissingValue = errors.New("missing configuration value")

// MissingValueError is returned by [Builder.Build] when a field has no value.
// Field holds the field name, e.g. "validator_endpoint".
type MissingValueError struct {
	Field string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing value for %s", e.Field)
}

// Is reports whether target is [ErrMissingValue].
func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}
