package routes

import "errors"

var (
	ErrDuplicatePattern = errors.New("duplicate route pattern")
	ErrDuplicateName    = errors.New("duplicate route name")
	ErrUnknownName      = errors.New("unknown route name")
	ErrArgCount         = errors.New("wrong number of route arguments")
	ErrInvalidPattern   = errors.New("invalid route pattern")
)
