package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeRateLimited  ErrorCode = "RATE_LIMITED"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Course planner specific errors
	CodeCourseNotFound   ErrorCode = "COURSE_NOT_FOUND"
	CodeFormExportFailed ErrorCode = "FORM_EXPORT_FAILED"
	CodeInvalidState     ErrorCode = "INVALID_OAUTH_STATE"
	CodeStorageError     ErrorCode = "STORAGE_ERROR"
)

// User-facing messages shared between the API and the generation layer.
const (
	MsgParseFailure   = "無法解析 AI 回應"
	MsgCourseNotFound = "課程不存在"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a detail to the error and returns it.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewCourseNotFoundError(courseID string) *DomainError {
	return NewError(CodeCourseNotFound, MsgCourseNotFound, nil).WithContext("course_id", courseID)
}

// NewStorageError keeps the native store message visible to the caller.
func NewStorageError(err error) *DomainError {
	return NewError(CodeStorageError, err.Error(), err)
}

func NewFormExportError(message string, err error) *DomainError {
	return NewError(CodeFormExportFailed, message, err)
}

func NewInvalidStateError(err error) *DomainError {
	return NewError(CodeInvalidState, "OAuth state is invalid or expired", err)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors collects every invalid field of a request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}

// Field returns the first error reported for field, if any.
func (e ValidationErrors) Field(field string) (ValidationError, bool) {
	for _, v := range e {
		if v.Field == field {
			return v, true
		}
	}
	return ValidationError{}, false
}

func NewMissingFieldError(field, label string) ValidationError {
	return ValidationError{Field: field, Code: CodeMissingField, Message: fmt.Sprintf("%s為必填", label)}
}

func NewInvalidFormatError(field, message string) ValidationError {
	return ValidationError{Field: field, Code: CodeInvalidFormat, Message: message}
}

func NewOutOfRangeError(field, message string) ValidationError {
	return ValidationError{Field: field, Code: CodeOutOfRange, Message: message}
}
