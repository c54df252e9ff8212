package domain

// Result is the uniform outcome of every generation operation. Exactly one of
// Data or Error is meaningful, selected by Success.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Ok wraps a successful value.
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail wraps a failure message.
func Fail[T any](message string) Result[T] {
	return Result[T]{Success: false, Error: message}
}

// FailFrom carries the failure of another result over to a different data type.
func FailFrom[T, U any](r Result[U]) Result[T] {
	return Fail[T](r.Error)
}
