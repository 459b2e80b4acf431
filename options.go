package galley

import (
	"github.com/tsawler/galley/annotate"
	"github.com/tsawler/galley/profile"
	"github.com/tsawler/galley/rules"
)

// checkOptions holds configuration for a check run.
type checkOptions struct {
	// profile supplies every tolerance, pattern and expectation the checks
	// compare against. Profiles are read-only once built, so clones share
	// the pointer.
	profile *profile.Profile

	// policy controls how many offenders a scanning check reports.
	policy rules.ScanPolicy

	// highlightColor is the RGB hex color of annotated runs.
	highlightColor string
}

// defaultOptions returns the default check options.
func defaultOptions() checkOptions {
	return checkOptions{
		profile:        profile.Default(),
		policy:         rules.StopOnFirst,
		highlightColor: annotate.DefaultColor,
	}
}

// clone creates a copy of checkOptions.
func (o checkOptions) clone() checkOptions {
	return o
}
