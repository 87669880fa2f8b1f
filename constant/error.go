package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrUsernameExists
	ErrInvalidCredentials
	ErrForbiddenRole
	ErrForbiddenTarget
	ErrInvalidAdminState
	ErrStateConflict
	ErrMasterAdminProtected
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrUsernameExists:       "username already exists",
	ErrInvalidCredentials:   "invalid username or password",
	ErrForbiddenRole:        "role not allowed to perform this action",
	ErrForbiddenTarget:      "action not allowed on this target",
	ErrInvalidAdminState:    "action not applicable to current admin state",
	ErrStateConflict:        "admin state changed concurrently, refetch and retry",
	ErrMasterAdminProtected: "master admin account cannot be modified",
	ErrTooManyRequests:      "too many requests",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusNotFound,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrUsernameExists:       http.StatusBadRequest,
	ErrInvalidCredentials:   http.StatusUnauthorized,
	ErrForbiddenRole:        http.StatusForbidden,
	ErrForbiddenTarget:      http.StatusForbidden,
	ErrInvalidAdminState:    http.StatusConflict,
	ErrStateConflict:        http.StatusConflict,
	ErrMasterAdminProtected: http.StatusForbidden,
	ErrTooManyRequests:      http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrUsernameExists:       "0005",
	ErrInvalidCredentials:   "0006",
	ErrForbiddenRole:        "0007",
	ErrForbiddenTarget:      "0008",
	ErrInvalidAdminState:    "0009",
	ErrStateConflict:        "0010",
	ErrMasterAdminProtected: "0011",
	ErrTooManyRequests:      "0012",
}
