package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/apperr"
)

// APIError is returned by handlers and rendered as {"error": Message}.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// HandlerFunc returns a value rendered as JSON with 200, or an error.
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

// ResolveEndpoint adapts a HandlerFunc to gin.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

// BadRequest builds a 400 error.
func BadRequest(message string) *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: message}
}

// FromError maps upstream and configuration errors onto HTTP statuses.
// op prefixes the log line, for example "[hadith] random".
func FromError(op string, err error) *APIError {
	switch {
	case apperr.IsConfig(err):
		log.Warn().Err(err).Msg(op + ": not configured")
		return &APIError{Code: http.StatusServiceUnavailable, Message: err.Error()}
	case apperr.IsParse(err):
		log.Error().Err(err).Msg(op + ": bad upstream response")
		return &APIError{Code: http.StatusBadGateway, Message: "upstream returned an unexpected response"}
	case apperr.IsGateway(err):
		log.Error().Err(err).Int("upstream_status", apperr.StatusCode(err)).Msg(op + ": upstream failed")
		return &APIError{Code: http.StatusBadGateway, Message: "upstream service unavailable"}
	default:
		log.Error().Err(err).Msg(op + ": failed")
		return &APIError{Code: http.StatusInternalServerError, Message: "internal error"}
	}
}
