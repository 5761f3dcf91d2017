package middlewares

import (
	"kyc.gateman.io/application/interfaces"
	"kyc.gateman.io/infrastructure/useragent"
)

// UserAgentMiddleware records who is calling. A missing User-Agent is allowed.
func UserAgentMiddleware(ctx *interfaces.ApplicationContext[any], clientIP string) *interfaces.ApplicationContext[any] {
	ctx.ClientIP = clientIP
	agent := ctx.GetHeader("User-Agent")
	if agent == nil {
		return ctx
	}
	agentDetails := useragent.ParseUserAgent(*agent)
	ctx.UserAgent = *agent
	ctx.DeviceName = agentDetails.Name
	return ctx
}
