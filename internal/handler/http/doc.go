// Package http implements the daemon's REST API.
//
// It exposes route wiring, request handlers and the middleware shared by all
// routes: panic recovery, request tracing and access logging.
package http
