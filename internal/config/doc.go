// Package config assembles the daemon's startup configuration.
//
// A [Builder] is seeded with baseline defaults by [NewBuilder], receives
// command-line overrides through [Builder.WithCLIArgs] (or the equivalent
// [ApplyOverrides]) and is finalized by [Builder.Build] into an immutable
// [Config]:
//
//	cfg, err := config.NewBuilder().
//		WithCLIArgs(config.NewFlagOptions(flags)).
//		Build()
//
// Only the options actually present on the command line replace a value.
// The log level is the exception: it is recomputed from the verbose count on
// every override step.
package config
