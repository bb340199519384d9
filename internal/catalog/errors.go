package catalog

import "errors"

var (
	ErrUnknownForm       = errors.New("unknown form")
	ErrInvalidDefinition = errors.New("invalid form definition")
	ErrDuplicateForm     = errors.New("form defined twice")
)
