//go:generate mockgen -source=interfaces.go -destination=../mock/validator_prober_mock.go -package=mock

package validator

import "context"

// Prober reports validator reachability.
type Prober interface {
	// Endpoint returns the configured validator endpoint as given.
	Endpoint() string

	// Probe returns nil when a connection to the validator can be opened.
	Probe(ctx context.Context) error
}
