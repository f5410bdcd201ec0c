package models

// Result is the uniform envelope returned by every hosted backend call.
// Callers inspect Success and Message instead of transport errors.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Ok wraps data in a successful envelope.
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail builds a failed envelope carrying a human-readable message.
func Fail[T any](message string) Result[T] {
	return Result[T]{Message: message}
}
