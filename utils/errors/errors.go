package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/agri-market/constant"
)

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CustomError struct {
	errType constant.ErrorType
	fields  []FieldError
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func (c CustomError) Fields() []FieldError {
	return c.fields
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetFieldError builds an ErrInvalidRequest carrying field-level detail.
func SetFieldError(fields ...FieldError) CustomError {
	return CustomError{
		errType: constant.ErrInvalidRequest,
		fields:  fields,
	}
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce.errType == errorType
	}
	return false
}
