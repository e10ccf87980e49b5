package cleanup

import "errors"

// Sentinel errors for package cleanup.
var (
	// ErrNoRuleSet is returned when the rules file defines no pattern set
	// for the requested mode/platform combination.
	ErrNoRuleSet = errors.New("no cleanup rule set defined")
)
