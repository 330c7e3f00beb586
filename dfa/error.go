package dfa

import "errors"

// ErrInvalidFragment means Convert was handed an NFA whose declared start
// (or end) id does not belong to that NFA's own arena.
var ErrInvalidFragment = errors.New("dfa: invalid NFA start/end state")

// ConvertError wraps a subset-construction failure.
type ConvertError struct {
	Err error
}

func (e *ConvertError) Error() string { return e.Err.Error() }
func (e *ConvertError) Unwrap() error { return e.Err }
