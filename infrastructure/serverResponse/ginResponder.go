package server_response

import (
	"github.com/gin-gonic/gin"
	"kyc.gateman.io/infrastructure/logger"
)

type ServerResponder interface {
	// Respond writes payload as the JSON body.
	Respond(ctx interface{}, code int, payload interface{})
	// RespondWithDetail writes {"detail": detail}, plus "errors" when errs is non-empty.
	RespondWithDetail(ctx interface{}, code int, detail string, errs []error)
}

var Responder ServerResponder = ginResponder{}

type ginResponder struct{}

func (gr ginResponder) Respond(ctx interface{}, code int, payload interface{}) {
	ginCtx, ok := (ctx).(*gin.Context)
	if !ok {
		logger.Error("could not transform *interface{} to gin.Context in serverResponse package", logger.LoggerOptions{
			Key:  "payload",
			Data: ctx,
		})
		return
	}
	ginCtx.Abort()
	ginCtx.JSON(code, payload)
}

func (gr ginResponder) RespondWithDetail(ctx interface{}, code int, detail string, errs []error) {
	response := map[string]any{
		"detail": detail,
	}
	if len(errs) > 0 {
		errMsgs := []string{}
		for _, err := range errs {
			errMsgs = append(errMsgs, err.Error())
		}
		response["errors"] = errMsgs
	}
	gr.Respond(ctx, code, response)
}
