package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"kyc.gateman.io/application/interfaces"
	"kyc.gateman.io/application/middlewares"
	"kyc.gateman.io/entities"
)

func ActivityLogMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		startTime := time.Now()
		ctx.Next()

		activityLog := entities.RequestActivityLog{
			Method:     ctx.Request.Method,
			Path:       ctx.Request.URL.Path,
			StatusCode: ctx.Writer.Status(),
			IPAddress:  ctx.ClientIP(),
			BodyBytes:  ctx.Request.ContentLength,
			Duration:   time.Since(startTime),
			Timestamp:  startTime,
		}
		if appContext, ok := ctx.Get("AppContext"); ok {
			activityLog.DeviceName = appContext.(*interfaces.ApplicationContext[any]).DeviceName
		}
		middlewares.ActivityLogMiddleware(activityLog)
	}
}
