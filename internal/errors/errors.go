package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe JSON data to stdin")
	ErrInvalidFilePath = errors.New("invalid file path")
)

// Syntax error sentinels. Every parse failure wraps exactly one of
// these, so callers can match on the failure class with errors.Is
// without inspecting the message.
var (
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnterminatedString   = errors.New("unterminated string")
	ErrUnterminatedObject   = errors.New("unterminated object")
	ErrUnterminatedArray    = errors.New("unterminated array")
	ErrInvalidLiteral       = errors.New("invalid literal")
	ErrInvalidNumber        = errors.New("invalid number")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
)

// SyntaxError reports where in the input a parse failed and why. Offset
// is the byte offset of the offending character (or the input length
// when the input ended early); Line and Column are 1-based and count
// bytes, not runes.
type SyntaxError struct {
	Err    error // one of the syntax error sentinels
	Detail string
	Offset int
	Line   int
	Column int
}

// Error implements error interface
func (e *SyntaxError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v: %s at line %d, column %d", e.Err, e.Detail, e.Line, e.Column)
	}
	return fmt.Sprintf("%v at line %d, column %d", e.Err, e.Line, e.Column)
}

// Unwrap returns the sentinel, making errors.Is work on the class
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// NewSyntaxError creates a positioned syntax error wrapping a sentinel
func NewSyntaxError(sentinel error, detail string, offset, line, column int) *SyntaxError {
	return &SyntaxError{
		Err:    sentinel,
		Detail: detail,
		Offset: offset,
		Line:   line,
		Column: column,
	}
}

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeParse   ErrorType = "parse"
	ErrorTypeConfig  ErrorType = "config"
	ErrorTypeEncode  ErrorType = "encode"
	ErrorTypeOutput  ErrorType = "output"
	ErrorTypeUnknown ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewParseError creates a new error related to JSON parsing
func NewParseError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: message,
		Err:     err,
	}
}

// NewConfigError creates a new error related to configuration loading
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// NewEncodeError creates a new error related to output encoding
func NewEncodeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeEncode,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	// Syntax errors already carry the position, show them as-is
	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return fmt.Sprintf("JSON syntax error: %v", synErr)
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParse:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeEncode:
			return fmt.Sprintf("Encoding error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
