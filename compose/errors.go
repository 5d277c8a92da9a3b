package compose

import "errors"

// ErrEmptyComposition is returned by Compose when either operand has no
// start state, so the result is trivially empty.
var ErrEmptyComposition = errors.New("compose: one or both operands have no start state")
