package routev1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "kyc.gateman.io/application/appErrors"
	"kyc.gateman.io/application/controller"
	"kyc.gateman.io/application/controller/dto"
	"kyc.gateman.io/application/interfaces"
)

func KycRouter(router *gin.RouterGroup, kycController *controller.KycController) {
	kycRouter := router.Group("/kyc")
	{
		kycRouter.POST("/upload", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.KycUploadDTO
			if !bindForm(ctx, &body) {
				return
			}
			kycController.UploadKyc(withBody(appContext, &body))
		})

		kycRouter.POST("/upload/async", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.KycUploadDTO
			if !bindForm(ctx, &body) {
				return
			}
			kycController.UploadKycAsync(withBody(appContext, &body))
		})

		kycRouter.GET("/jobs/:id", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			kycController.FetchKycJob(&interfaces.ApplicationContext[any]{
				Ctx:        ctx,
				RequestCtx: ctx.Request.Context(),
				Keys:       appContext.Keys,
				Header:     appContext.Header,
				Param: map[string]string{
					"id": ctx.Param("id"),
				},
				ClientIP:   appContext.ClientIP,
				UserAgent:  appContext.UserAgent,
				DeviceName: appContext.DeviceName,
			})
		})

		kycRouter.POST("/qr", func(ctx *gin.Context) {
			appContext := ctx.MustGet("AppContext").(*interfaces.ApplicationContext[any])
			var body dto.QRReadDTO
			if !bindForm(ctx, &body) {
				return
			}
			kycController.ReadQR(withBody(appContext, &body))
		})
	}
}

func bindForm(ctx *gin.Context, body any) bool {
	err := ctx.ShouldBind(body)
	if err == nil {
		return true
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		apperrors.PayloadTooLargeError(ctx)
	} else {
		apperrors.ErrorProcessingPayload(ctx, err)
	}
	return false
}

func withBody[T any](appContext *interfaces.ApplicationContext[any], body *T) *interfaces.ApplicationContext[T] {
	return &interfaces.ApplicationContext[T]{
		Ctx:        appContext.Ctx,
		RequestCtx: appContext.Ctx.(*gin.Context).Request.Context(),
		Body:       body,
		Keys:       appContext.Keys,
		Header:     appContext.Header,
		ClientIP:   appContext.ClientIP,
		UserAgent:  appContext.UserAgent,
		DeviceName: appContext.DeviceName,
	}
}
