package interfaces

import (
	"context"
	"net/http"
)

// ApplicationContext carries the transport context and the bound request body
// into controllers.
type ApplicationContext[T any] struct {
	Ctx        any
	RequestCtx context.Context
	Body       *T
	Keys       map[string]any
	Header     http.Header
	Param      map[string]string
	ClientIP   string
	UserAgent  string
	DeviceName string
}

func (ctx *ApplicationContext[T]) GetHeader(key string) *string {
	value := ctx.Header.Get(key)
	if value == "" {
		return nil
	}
	return &value
}
