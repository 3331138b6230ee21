package httpdto

import "time"

// Error categories carried in the envelope's error field.
const (
	ErrorBadRequest      = "Bad Request"
	ErrorNotFound        = "Not Found"
	ErrorTooLarge        = "Request Entity Too Large"
	ErrorTooManyRequests = "Too Many Requests"
	ErrorInternal        = "Internal Server Error"
)

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func NewErrorResponse(category string, message string) ErrorResponse {
	return ErrorResponse{
		Error:     category,
		Message:   message,
		Timestamp: Timestamp(time.Now()),
	}
}

// Timestamp renders t as ISO-8601 in UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

type PingResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func NewPingResponse(now time.Time) PingResponse {
	return PingResponse{
		Status:    "ok",
		Message:   "Server is running",
		Timestamp: Timestamp(now),
	}
}
