// Package apierr defines the API failure taxonomy and the single dispatch
// point that turns any failure raised in the request pipeline into the
// terminal HTTP response.
//
// Every endpoint — success or failure — answers with the same envelope:
//
//	{ "status": "success" | "error", "message": "<string>", "data": <T> | null }
//
// so clients parse exactly one shape. Failures are modeled as a closed set
// of kinds (see error.go); the Dispatcher (dispatch.go) classifies an opaque
// failure and renders status code plus envelope. No handler constructs an
// HTTP error response directly — they raise a kind into the request-failure
// channel and the dispatcher is the backstop.
package apierr

// Status is the envelope discriminator. It is distinct from the HTTP status
// code: an HTTP 404 body still carries Status "error".
type Status string

const (
	// StatusSuccess marks a successful response envelope.
	StatusSuccess Status = "success"
	// StatusError marks a failure response envelope.
	StatusError Status = "error"
)

// Envelope is the uniform wire shape of every API response.
//
// Data is deliberately not tagged omitempty: error responses must serialize
// an explicit "data": null so the field set stays stable across endpoints.
type Envelope struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Success builds a success envelope carrying message and payload.
func Success(message string, data any) Envelope {
	return Envelope{Status: StatusSuccess, Message: message, Data: data}
}

// Failure builds an error envelope. Data is always null on failure paths.
func Failure(message string) Envelope {
	return Envelope{Status: StatusError, Message: message}
}
