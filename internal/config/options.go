package config

import (
	"github.com/spf13/pflag"
)

// Command-line option names understood by [ApplyOverrides].
const (
	OptionConnect = "connect"
	OptionBind    = "bind"
	OptionVerbose = "verbose"
)

// Options is a parsed command-line option set.
type Options interface {
	// ValueOf returns the value of a string option and whether it was given
	// on the command line.
	ValueOf(name string) (string, bool)
	// OccurrencesOf returns how many times a flag appeared.
	OccurrencesOf(name string) int
}

// RegisterFlags declares the daemon's configuration flags on fs.
//
// Flags:
//
//	-C, --connect  validator endpoint (default "tcp://127.0.0.1:4004")
//	-b, --bind     REST API endpoint in format [host]:[port] (default "127.0.0.1:8080")
//	-v, --verbose  increase output verbosity, may be repeated (-vv)
//
// The flag defaults are left empty so that [FlagOptions] can tell an explicit
// value from an absent one; the real defaults come from [NewBuilder].
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(OptionConnect, "C", "", `connection endpoint for validator (default "`+DefaultValidatorEndpoint+`")`)
	fs.StringP(OptionBind, "b", "", `connection endpoint for rest API (default "`+DefaultRestAPIEndpoint+`")`)
	fs.CountP(OptionVerbose, "v", "increase output verbosity")
}

// FlagOptions adapts a parsed [pflag.FlagSet] to [Options].
type FlagOptions struct {
	fs *pflag.FlagSet
}

// NewFlagOptions wraps fs. fs is expected to be parsed already.
func NewFlagOptions(fs *pflag.FlagSet) *FlagOptions {
	return &FlagOptions{fs: fs}
}

// ValueOf reports the flag value only when it was set on the command line.
func (o *FlagOptions) ValueOf(name string) (string, bool) {
	f := o.fs.Lookup(name)
	if f == nil || !f.Changed {
		return "", false
	}

	return f.Value.String(), true
}

// OccurrencesOf returns the value of a count flag, or 0 when name is not a
// registered count flag.
func (o *FlagOptions) OccurrencesOf(name string) int {
	n, err := o.fs.GetCount(name)
	if err != nil {
		return 0
	}

	return n
}
