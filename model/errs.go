package model

import "errors"

var (
	ErrRange = errors.New("range error")
	ErrType  = errors.New("type error")
)

// ErrDetached is returned when mutating a nested model view whose node has
// been destroyed.
var ErrDetached = errors.New("detached model view")
