package validator

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/grid-daemon/internal/logger"
)

// DefaultProbeTimeout bounds a single reachability probe.
const DefaultProbeTimeout = 2 * time.Second

type tcpProber struct {
	endpoint string
	dialer   *net.Dialer

	logger *logger.Logger
}

// NewProber returns a [Prober] dialing endpoint over TCP. A non-positive
// timeout selects [DefaultProbeTimeout].
func NewProber(endpoint string, timeout time.Duration, logger *logger.Logger) Prober {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	return &tcpProber{
		endpoint: endpoint,
		dialer:   &net.Dialer{Timeout: timeout},
		logger:   logger,
	}
}

func (p *tcpProber) Endpoint() string {
	return p.endpoint
}

func (p *tcpProber) Probe(ctx context.Context) error {
	addr, err := Address(p.endpoint)
	if err != nil {
		return err
	}

	conn, err := p.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		p.logger.Debug().Err(err).Str("address", addr).Msg("validator probe failed")
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	if err := conn.Close(); err != nil {
		p.logger.Debug().Err(err).Str("address", addr).Msg("error closing validator probe connection")
	}

	return nil
}
