package formula

import "errors"

// ErrUnknownActivation indicates an activation name or value outside the catalog.
var ErrUnknownActivation = errors.New("formula: unknown activation")
