package middlewares

import (
	"net/http"

	"kyc.gateman.io/entities"
	"kyc.gateman.io/infrastructure/logger"
)

func ActivityLogMiddleware(activityLog entities.RequestActivityLog) {
	options := logger.LoggerOptions{
		Key:  "request",
		Data: activityLog,
	}
	switch {
	case activityLog.StatusCode >= http.StatusInternalServerError:
		logger.Error("request failed", options)
	case activityLog.StatusCode >= http.StatusBadRequest:
		logger.Warning("request rejected", options)
	default:
		logger.Info("request served", options)
	}
}
