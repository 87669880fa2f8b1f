package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/agri-market/constant"
	cerr "github.com/muhammadheryan/agri-market/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError_HTTPMapping(t *testing.T) {
	tests := []struct {
		name     string
		errType  constant.ErrorType
		wantHTTP int
	}{
		{name: "validation", errType: constant.ErrInvalidRequest, wantHTTP: http.StatusBadRequest},
		{name: "not authenticated", errType: constant.ErrUnauthorize, wantHTTP: http.StatusUnauthorized},
		{name: "wrong role", errType: constant.ErrForbiddenRole, wantHTTP: http.StatusForbidden},
		{name: "wrong target", errType: constant.ErrForbiddenTarget, wantHTTP: http.StatusForbidden},
		{name: "not found", errType: constant.ErrNotFound, wantHTTP: http.StatusNotFound},
		{name: "invalid state", errType: constant.ErrInvalidAdminState, wantHTTP: http.StatusConflict},
		{name: "conflict", errType: constant.ErrStateConflict, wantHTTP: http.StatusConflict},
		{name: "internal", errType: constant.ErrInternal, wantHTTP: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ce := cerr.SetCustomError(tt.errType)
			assert.Equal(t, tt.wantHTTP, ce.ErrorHTTPCode())
			assert.Equal(t, constant.ErrorTypeCode[tt.errType], ce.ErrorCode())
			assert.Equal(t, constant.ErrorTypeMessage[tt.errType], ce.Error())
		})
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", cerr.SetCustomError(constant.ErrStateConflict))
	assert.True(t, cerr.Is(err, constant.ErrStateConflict))
	assert.False(t, cerr.Is(err, constant.ErrInternal))
	assert.False(t, cerr.Is(fmt.Errorf("plain"), constant.ErrInternal))
}

func TestSetFieldError(t *testing.T) {
	ce := cerr.SetFieldError(cerr.FieldError{Field: "reason", Message: "required"})
	assert.Equal(t, constant.ErrInvalidRequest, ce.Type())
	assert.Len(t, ce.Fields(), 1)
	assert.Equal(t, "reason", ce.Fields()[0].Field)
}
