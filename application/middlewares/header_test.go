package middlewares

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"kyc.gateman.io/application/interfaces"
)

func TestUserAgentMiddleware(t *testing.T) {
	header := http.Header{}
	header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0")

	ctx := UserAgentMiddleware(&interfaces.ApplicationContext[any]{Header: header}, "10.0.0.7")

	assert.Equal(t, "10.0.0.7", ctx.ClientIP)
	assert.Equal(t, "Firefox", ctx.DeviceName)
	assert.Equal(t, header.Get("User-Agent"), ctx.UserAgent)
}

func TestUserAgentMiddlewareWithoutHeader(t *testing.T) {
	ctx := UserAgentMiddleware(&interfaces.ApplicationContext[any]{Header: http.Header{}}, "10.0.0.7")

	assert.Equal(t, "10.0.0.7", ctx.ClientIP)
	assert.Empty(t, ctx.UserAgent)
	assert.Empty(t, ctx.DeviceName)
}
