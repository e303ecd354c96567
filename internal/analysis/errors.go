package analysis

import "errors"

// ErrUnknownFunction indicates a name missing from Functions.
var ErrUnknownFunction = errors.New("analysis: unknown function")
