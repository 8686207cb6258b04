package gamefile

import "errors"

// Sentinel errors for the five fixed sections of the game file format,
// reported when a section's header line is truncated — i.e. the file ends
// before that section even begins.
var (
	ErrMissingActionsSection         = errors.New("gamefile: truncated before the actions section")
	ErrMissingLocationsSection       = errors.New("gamefile: truncated before the locations section")
	ErrMissingInitialLocationSection = errors.New("gamefile: truncated before the initial location section")
	ErrMissingObservationsSection    = errors.New("gamefile: truncated before the observations section")
	ErrMissingTransitionsSection     = errors.New("gamefile: truncated before the transitions section")

	// ErrDuplicateLocationIndex indicates the same location index line
	// appeared twice.
	ErrDuplicateLocationIndex = errors.New("gamefile: duplicate location index")

	// ErrNonCoveringLocationIndices indicates the location indices given
	// do not cover 0..n-1 exactly.
	ErrNonCoveringLocationIndices = errors.New("gamefile: location indices must cover 0..n-1 exactly")
)

// trimChars mirrors Python's string.whitespace plus the quote characters,
// stripped from both ends of action names and location names.
const trimChars = " \t\n\v\f\r'\""
