package apperrors

import (
	"net/http"

	"kyc.gateman.io/application/constants"
	"kyc.gateman.io/infrastructure/logger"
	server_response "kyc.gateman.io/infrastructure/serverResponse"
)

func NotFoundError(ctx interface{}, message string) {
	server_response.Responder.RespondWithDetail(ctx, http.StatusNotFound, message, nil)
}

func ValidationFailedError(ctx interface{}, errMessages *[]error) {
	errs := *errMessages
	server_response.Responder.RespondWithDetail(ctx, http.StatusUnprocessableEntity, errs[0].Error(), errs)
}

func InvalidFileTypeError(ctx interface{}, err error) {
	server_response.Responder.RespondWithDetail(ctx, http.StatusBadRequest, err.Error(), nil)
}

func ErrorProcessingPayload(ctx interface{}, err error) {
	logger.Warning("abnormal payload received", logger.LoggerOptions{
		Key:  "error",
		Data: err.Error(),
	})
	server_response.Responder.RespondWithDetail(ctx, http.StatusBadRequest, "Abnormal payload passed", nil)
}

func PayloadTooLargeError(ctx interface{}) {
	server_response.Responder.RespondWithDetail(ctx, http.StatusRequestEntityTooLarge, "Upload exceeds the maximum allowed size", nil)
}

func ServiceUnavailableError(ctx interface{}, message string) {
	server_response.Responder.RespondWithDetail(ctx, http.StatusServiceUnavailable, message, nil)
}

// PipelineError reports a verification run aborted by a failing dependency.
func PipelineError(ctx interface{}, err error) {
	logger.Error("kyc pipeline error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.Respond(ctx, http.StatusInternalServerError, map[string]any{
		"success": false,
		"error":   err.Error(),
		"hint":    constants.PIPELINE_FAILURE_HINT,
	})
}

func FatalServerError(ctx interface{}, err error) {
	logger.Error("internal server error", logger.LoggerOptions{
		Key:  "error",
		Data: err,
	})
	server_response.Responder.RespondWithDetail(ctx, http.StatusInternalServerError, "Internal server error", nil)
}
