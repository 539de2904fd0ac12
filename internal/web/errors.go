package web

// errors.go provides unified error response handling for the web layer.
//
// It ensures all errors are:
//   - Logged with full technical details for debugging (server-side)
//   - Returned to clients as user-friendly messages with action suggestions
//
// The error flow:
//  1. Handler encounters an error
//  2. Calls s.respondError(w, r, err)
//  3. The status code is derived from the error (statusFor)
//  4. Error is mapped via core.MapError to get user-friendly message
//  5. Technical error + context is logged with request ID for correlation

import (
	"context"
	"errors"
	"net/http"

	"github.com/JonMunkholm/geoanla/internal/catalog"
	"github.com/JonMunkholm/geoanla/internal/core"
	"github.com/JonMunkholm/geoanla/internal/logging"
)

// ErrorResponse represents the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Message, Action) fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// errBadRequest marks client mistakes that carry no sentinel of their own.
var errBadRequest = errors.New("bad request")

// statusFor returns the HTTP status of an error.
func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, core.ErrSchemaNotFound),
		errors.Is(err, core.ErrResultNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrUnsupportedSource):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, core.ErrTooManyBatches):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, core.ErrNoDatabase), errors.Is(err, errElevationDisabled):
		return http.StatusNotImplemented
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, core.ErrDomainNotFound),
		errors.Is(err, catalog.ErrReferenceDataMissing):
		return http.StatusInternalServerError
	case errors.Is(err, errBadRequest), core.IsUserFacing(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs the technical error server-side and writes the mapped
// user message as JSON.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	s.respondErrorStatus(w, r, err, statusFor(err))
}

func (s *Server) respondErrorStatus(w http.ResponseWriter, r *http.Request, err error, status int) {
	msg := core.MapError(err)
	switch {
	case msg.Code != "ERR000":
	case errors.Is(err, errBadRequest):
		msg = core.UserMessage{Message: err.Error(), Action: "Check the request parameters", Code: "REQ001"}
	case errors.Is(err, errElevationDisabled):
		msg = core.UserMessage{Message: "Elevation lookup is not available", Action: "Configure ELEVATION_URL", Code: "ELV001"}
	case status == http.StatusRequestEntityTooLarge:
		msg = core.UserMessage{Message: "Request body is too large", Action: "Split the input and use the offset parameter", Code: "REQ002"}
	}

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", msg.Code,
	)

	writeJSON(w, status, ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	})
}
