package validators

import "errors"

var (
	ErrUnknownRule   = errors.New("unknown validation rule")
	ErrInvalidParams = errors.New("invalid rule parameters")
	ErrDuplicateRule = errors.New("validation rule already registered")
)
