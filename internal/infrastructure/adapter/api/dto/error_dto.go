package dto

// ErrorResponse is the body of every failed request. RequestID echoes the
// X-Request-ID header so a client report can be matched to the server log.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}
