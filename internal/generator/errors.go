package generator

import "errors"

var (
	// ErrInvalidInput rejects a generation call before any selection
	// work begins.
	ErrInvalidInput = errors.New("invalid generation input")
	// ErrNoTemplate means the discipline has zero active template steps.
	ErrNoTemplate = errors.New("no active workout template defined")
	// ErrNoScripts means the walk and balancing selected nothing at all.
	ErrNoScripts = errors.New("no suitable scripts found for workout generation")
)
