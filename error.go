package enumit

import "errors"

var (
	ErrBadBounds = errors.New("begin after end")
)
