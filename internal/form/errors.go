package form

import "errors"

var (
	ErrUnknownField      = errors.New("unknown field")
	ErrInvalidDependency = errors.New("invalid field dependency")
	ErrInvalidDefinition = errors.New("invalid form definition")
	ErrCoercion          = errors.New("cannot coerce field value")
)
