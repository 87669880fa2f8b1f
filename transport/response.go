package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/utils/errors"
	"github.com/muhammadheryan/agri-market/utils/logger"
	"go.uber.org/zap"
)

// Response is the envelope every JSON endpoint writes.
type Response struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  []errors.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeStatus(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeStatus(w, http.StatusCreated, data)
}

func writeStatus(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError maps a CustomError onto its HTTP status; anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] untyped error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), Response{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
		Errors:  ce.Fields(),
	})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetFieldError(errors.FieldError{Field: "body", Message: "malformed JSON"})
	}
	return nil
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetFieldError(errors.FieldError{Field: "id", Message: "must be a positive integer"})
	}
	return id, nil
}

func queryInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	return n
}

func queryUint(r *http.Request, key string) (uint64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.SetFieldError(errors.FieldError{Field: key, Message: "must be a positive integer"})
	}
	return n, nil
}

// queryFloat returns nil when key is absent.
func queryFloat(r *http.Request, key string) (*float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.SetFieldError(errors.FieldError{Field: key, Message: "must be a number"})
	}
	return &f, nil
}

func fieldRequired(field string) error {
	return errors.SetFieldError(errors.FieldError{Field: field, Message: "is required"})
}
