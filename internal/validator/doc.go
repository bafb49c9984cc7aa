// Package validator checks whether the validator the daemon is configured to
// talk to is reachable.
//
// Endpoints are accepted either as "tcp://host:port" or as a bare
// "host:port". A probe opens a TCP connection and closes it immediately.
package validator
