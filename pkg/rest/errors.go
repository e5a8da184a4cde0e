package rest

import "fmt"

// APIError is the error returned for any failed backend call: transport
// failures, non-2xx statuses, and application-level error envelopes.
// Message is already user-facing; callers can surface it directly.
type APIError struct {
	StatusCode int    // 0 for transport failures and error envelopes
	Message    string
	Err        error // underlying cause, when any
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

// statusMessage maps HTTP error statuses to the fixed user-facing messages.
// 400 is special-cased in the client: the server's own message wins when the
// body carries one.
func statusMessage(code int) string {
	switch code {
	case 400:
		return "Bad Request (400)"
	case 401:
		return "Unauthorized, please log in again (401)"
	case 403:
		return "Access Forbidden (403)"
	case 404:
		return "Resource Not Found (404)"
	case 405:
		return "Method Not Allowed (405)"
	case 408:
		return "Request Timeout (408)"
	case 500:
		return "Internal Server Error (500)"
	case 501:
		return "Service Not Implemented (501)"
	case 502:
		return "Bad Gateway (502)"
	case 503:
		return "Service Unavailable (503)"
	case 504:
		return "Gateway Timeout (504)"
	case 505:
		return "HTTP Version Not Supported (505)"
	default:
		return fmt.Sprintf("Connection Error (%d)!", code)
	}
}
