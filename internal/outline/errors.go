package outline

import "errors"

// ErrInvalidOutline is returned by Decompose as is, and by Validate wrapped
// with detail (match it with errors.Is), whenever the
// point/tag sequence violates the contour grammar: a contour starting
// with a cubic control point, a cubic control not followed by a second
// cubic control and then an on-curve point, or a structural mismatch
// between the point count and the last contour's end index.
var ErrInvalidOutline = errors.New("outline: invalid outline")
