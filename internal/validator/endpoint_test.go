package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     string
		wantErr  bool
	}{
		{name: "default endpoint", endpoint: "tcp://127.0.0.1:4004", want: "127.0.0.1:4004"},
		{name: "bare host and port", endpoint: "validator:4004", want: "validator:4004"},
		{name: "tcp hostname", endpoint: "tcp://validator:4004", want: "validator:4004"},
		{name: "ipv6", endpoint: "tcp://[::1]:4004", want: "[::1]:4004"},
		{name: "unsupported scheme", endpoint: "udp://127.0.0.1:4004", wantErr: true},
		{name: "missing port", endpoint: "tcp://127.0.0.1", wantErr: true},
		{name: "empty host", endpoint: ":4004", wantErr: true},
		{name: "port out of range", endpoint: "validator:70000", wantErr: true},
		{name: "non numeric port", endpoint: "validator:abc", wantErr: true},
		{name: "empty", endpoint: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Address(tt.endpoint)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidEndpoint)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
