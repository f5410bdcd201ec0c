package validators

import "errors"

var (
	ErrNilValue    = errors.New("nothing to validate")
	ErrInvalidData = errors.New("invalid data")
	ErrUnknownField = errors.New("unknown field for validation")
)

// FieldError describes one failed rule, keyed by the JSON field name.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every failed rule of one value. It matches
// [ErrInvalidData] with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidData.Error()
	}
	msg := ErrInvalidData.Error() + ":"
	for i, f := range e.Fields {
		if i > 0 {
			msg += ";"
		}
		msg += " " + f.Message
	}
	return msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidData
}
