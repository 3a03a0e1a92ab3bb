package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/pixel-color/internal/models"
	"go.uber.org/zap"
)

const internalServerError = "Internal Server Error"

// ErrorHandler handles panics
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", ctx.Request.URL.Path),
			zap.String("method", ctx.Request.Method),
		)

		ctx.String(http.StatusInternalServerError, internalServerError)
		ctx.Abort()
	})
}

// ErrorResponder renders the last error attached to the context. *models.HTTPError
// becomes a JSON body; anything else is a bare 500.
func ErrorResponder(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if len(ctx.Errors) == 0 || ctx.Writer.Written() {
			return
		}

		err := ctx.Errors.Last().Err

		var httpErr *models.HTTPError
		if errors.As(err, &httpErr) {
			ctx.JSON(httpErr.StatusCode, httpErr.Response())
			return
		}

		logger.Error("Unhandled error",
			zap.Error(err),
			zap.String("path", ctx.Request.URL.Path),
			zap.String("method", ctx.Request.Method),
		)
		ctx.String(http.StatusInternalServerError, internalServerError)
	}
}
