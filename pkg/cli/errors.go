package cli

import "errors"

// ErrNotAcceptable is reported by match when no offer is acceptable.
var ErrNotAcceptable = errors.New("not acceptable")
