package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "kyc.gateman.io/application/appErrors"
)

// UploadLimitMiddleware caps request bodies at maxBytes. Declared oversize
// bodies are refused up front; chunked ones fail while binding.
func UploadLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.ContentLength > maxBytes {
			apperrors.PayloadTooLargeError(ctx)
			return
		}
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		ctx.Next()
	}
}
