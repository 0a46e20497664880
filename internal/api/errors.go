package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/internal/logging"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, contract.ErrInvalidAssessment):
		return http.StatusBadRequest
	case errors.Is(err, contract.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, contract.ErrDuplicateProfile):
		return http.StatusConflict
	case errors.Is(err, contract.ErrDataAccess):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Store failures are logged, and
// their details stay out of the response body.
func respondError(g *gin.Context, action string, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		logging.Log.Errorf("API: %s failed: %v", action, err)
		msg = action + " failed: " + http.StatusText(status)
	}
	g.JSON(status, ErrorResponse{Error: msg})
}
