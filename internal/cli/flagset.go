package cli

import "flag"

// NewFlagSet returns a clean FlagSet with ContinueOnError and the
// colorseq usage handler installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	installUsage(fs, name)
	return fs
}
