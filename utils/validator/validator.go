package validatorx

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/utils/errors"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()

	// report json field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("role", func(fl gpvalidator.FieldLevel) bool {
		return constant.Role(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("requestable_admin", func(fl gpvalidator.FieldLevel) bool {
		return constant.AdminType(fl.Field().String()).IsRequestable()
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// Validate validates s and converts failures into an ErrInvalidRequest with field detail.
func Validate(s interface{}) error {
	err := ValidateStruct(s)
	if err == nil {
		return nil
	}

	var verrs gpvalidator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	fields := make([]errors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, errors.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return errors.SetFieldError(fields...)
}

func fieldMessage(fe gpvalidator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("must be greater than %s", strings.TrimSuffix(fe.Param(), "="))
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "latitude", "longitude":
		return "must be a valid " + fe.Tag()
	case "role":
		return "must be buyer or seller"
	case "requestable_admin":
		return "must be local_admin or super_admin"
	}
	return "is invalid"
}

// CoordinatePair requires latitude and longitude to be given together or not at all.
func CoordinatePair(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return errors.SetFieldError(errors.FieldError{Field: "latitude", Message: "latitude and longitude must be set together"})
	}
	return nil
}
