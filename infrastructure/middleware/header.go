package middlewares

import (
	"github.com/gin-gonic/gin"
	"kyc.gateman.io/application/interfaces"
	"kyc.gateman.io/application/middlewares"
)

func UserAgentMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		appContext := middlewares.UserAgentMiddleware(&interfaces.ApplicationContext[any]{
			Ctx:        ctx,
			RequestCtx: ctx.Request.Context(),
			Keys:       ctx.Keys,
			Header:     ctx.Request.Header,
		}, ctx.ClientIP())
		ctx.Set("AppContext", appContext)
		ctx.Next()
	}
}
