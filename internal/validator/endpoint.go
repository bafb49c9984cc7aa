package validator

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

const tcpScheme = "tcp"

// Address converts a validator endpoint into a dialable "host:port".
func Address(endpoint string) (string, error) {
	hostPort := endpoint
	if strings.Contains(endpoint, "://") {
		u, err := url.Parse(endpoint)
		if err != nil {
			return "", fmt.Errorf("%w %q: %w", ErrInvalidEndpoint, endpoint, err)
		}
		if u.Scheme != tcpScheme {
			return "", fmt.Errorf("%w %q: unsupported scheme %q", ErrInvalidEndpoint, endpoint, u.Scheme)
		}
		hostPort = u.Host
	}

	host, port, err := net.SplitHostPort(hostPort)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidEndpoint, endpoint, err)
	}
	if host == "" {
		return "", fmt.Errorf("%w %q: empty host", ErrInvalidEndpoint, endpoint)
	}

	portNumber, err := strconv.Atoi(port)
	if err != nil || portNumber < 1 || portNumber > 65535 {
		return "", fmt.Errorf("%w %q: port must be within 1-65535", ErrInvalidEndpoint, endpoint)
	}

	return net.JoinHostPort(host, port), nil
}
