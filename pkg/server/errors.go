package server

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/millworks/millwright/pkg/errors"
	"github.com/millworks/millwright/pkg/serializer"

	"github.com/google/uuid"
)

// ErrorResponse is the JSON body returned on request failures.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"request_id"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// writeError writes error response
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// writeStructuredError maps engine error codes to HTTP status codes.
func (s *Server) writeStructuredError(w http.ResponseWriter, r *http.Request, err error) {
	var se *errors.StructuredError
	if !stderrors.As(err, &se) {
		s.writeError(w, r, http.StatusInternalServerError,
			errors.ErrCodeInternal, err.Error(), true, nil)
		return
	}

	status := http.StatusInternalServerError
	switch se.Code {
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidRequest, errors.ErrCodeDataFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeOutOfRange, errors.ErrCodeLimitExceeded:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeRateLimitExceeded:
		status = http.StatusTooManyRequests
	}

	s.writeError(w, r, status, se.Code, se.Message, false, se.Context)
}
