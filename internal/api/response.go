// Package api defines the uniform response envelope shared by all endpoints.
package api

// Envelope is the wrapper returned for every API outcome, success or failure.
// StatusCode mirrors the HTTP status of the response.
type Envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	StatusCode int    `json:"statusCode"`
}

// Success builds a success envelope with an optional data payload.
func Success(message string, data any, statusCode int) Envelope {
	return Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: statusCode,
	}
}

// Error builds a failure envelope.
func Error(message string, statusCode int) Envelope {
	return Envelope{
		Success:    false,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithData returns a copy of the envelope carrying the given payload.
func (e Envelope) WithData(data any) Envelope {
	e.Data = data
	return e
}
