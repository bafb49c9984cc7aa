// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validator

import "errors"

var (
	// ErrInvalidEndpoint indicates an endpoint that is not of the form
	// "tcp://host:port" or "host:port".
	ErrInvalidEndpoint = errors.New("invalid validator endpoint")
	// ErrUnreachable indicates that no connection could be opened.
	ErrUnreachable = errors.New("validator is unreachable")
)
