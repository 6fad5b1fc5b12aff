// Package errorspkg provides errors shared across app layers.
package errorspkg

import "errors"

// ErrInternal hides store and infrastructure failures from callers.
// The cause is logged where it occurs.
var ErrInternal = errors.New("internal error")
