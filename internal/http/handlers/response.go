package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-biztime-backend/internal/domain"
	"github.com/tbourn/go-biztime-backend/internal/http/middleware"
)

// ErrorDetail is the nested part of the error envelope.
type ErrorDetail struct {
	Message string `json:"message" example:"Can't find company acme"`
	Status  int    `json:"status" example:"404"`
}

// ErrorResponse is the error envelope returned by every endpoint:
//
//	{"error":{"message":"Not Found","status":404},"message":"Not Found"}
//
// The top-level message duplicates error.message.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Message string      `json:"message" example:"Can't find company acme"`
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// abort records err on the context and stops the handler chain.
// ErrorHandler turns it into a response.
func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// renderError writes the envelope for err. When its chain holds a
// *domain.Error, that error supplies the status and the message, so
// wrapping context never leaks into the response. Anything else is a 500
// carrying the error text. Server errors are logged with the
// request-scoped logger.
func renderError(c *gin.Context, err error) {
	status := domain.StatusOf(err)
	msg := err.Error()
	var de *domain.Error
	if errors.As(err, &de) {
		msg = de.Message
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Err(err).
			Int("status", status).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   ErrorDetail{Message: msg, Status: status},
		Message: msg,
	})
}

// Fail is the exported variant of renderError, for callers outside this
// package (e.g. router-level endpoints).
func Fail(c *gin.Context, err error) { renderError(c, err) }

// ErrorHandler renders the last error attached to the context once the
// chain returns, unless a response has already been written.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		renderError(c, c.Errors.Last().Err)
	}
}

// NotFound answers unmatched paths and methods.
func NotFound(c *gin.Context) {
	renderError(c, domain.NewError(http.StatusNotFound, MsgNotFound))
}
