package oo

import "errors"

// ErrBadInput marks validation errors: coordinates out of range, malformed
// zone tokens, quadkeys of the wrong shape. These are user errors and worth
// a helpful message.
var ErrBadInput = errors.New("bad input")

// ErrConversion marks conversion faults: the projection library refused a
// transform, a UTM coordinate unprojected to an impossible point, or a
// quadkey held a digit that should have been caught at parse time. These are
// not expected in normal operation and there is no partial result to give.
var ErrConversion = errors.New("conversion failed")
