package entities

import "time"

// RequestActivityLog is the access-log line written for every HTTP request.
type RequestActivityLog struct {
	Method     string        `json:"method"`
	Path       string        `json:"path"`
	StatusCode int           `json:"statusCode"`
	IPAddress  string        `json:"ipAddress"`
	DeviceName string        `json:"deviceName,omitempty"`
	BodyBytes  int64         `json:"bodyBytes"`
	Duration   time.Duration `json:"duration"`
	Timestamp  time.Time     `json:"timestamp"`
}
