package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blognest-backend/internal/domain"
)

// internalMessage replaces the message of any unclassified error.
const internalMessage = "internal server error"

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Errors renders the last error attached with c.Error once the handler chain
// returns. Classified errors keep their message; anything else is logged and
// reported as a bare 500.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		kind := domain.KindOf(err)

		if kind == domain.KindInternal {
			RequestLogger(c).ErrorContext(c.Request.Context(), "Request failed",
				slog.String("method", c.Request.Method),
				slog.String("path", c.FullPath()),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalMessage})
			return
		}

		resp := ErrorResponse{Error: err.Error()}
		var derr *domain.Error
		if errors.As(err, &derr) {
			resp = ErrorResponse{Error: derr.Message, Fields: derr.Fields}
		}
		c.JSON(kind.HTTPStatus(), resp)
	}
}

// Recovery converts a panic into a logged 500 response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		RequestLogger(c).ErrorContext(c.Request.Context(), "Panic recovered",
			slog.String("path", c.Request.URL.Path),
			slog.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: internalMessage})
	})
}
