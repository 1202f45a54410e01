package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merchware/shipcast/internal/domain/dto"
	"github.com/merchware/shipcast/internal/logger"
)

// ErrorHandler catches errors handlers deferred via c.Error and, when no
// response was written yet, renders the last one as a 500 ErrorResponse.
// Handlers that already wrote a status keep it.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("deferred handler error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError writes an ErrorResponse with the given status and stops the
// handler chain. Handlers use it for every non-200 exit so error bodies stay
// uniform across the API.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
