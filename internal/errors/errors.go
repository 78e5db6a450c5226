package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrDirectoryNotFound          = errors.New("directory not found")
	ErrFileNotFoundForLanguage    = errors.New("no localization file for the requested language")
	ErrMissingExtension           = errors.New("localization file has no extension")
	ErrUnsupportedExtension       = errors.New("localization file has an unsupported extension")
	ErrUnreadableFile             = errors.New("localization file could not be read")
	ErrEmptyInput                 = errors.New("input is empty or contains only whitespace")
	ErrMalformedJSON              = errors.New("malformed JSON")
	ErrMultipleJSON               = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrArrayContainsObject        = errors.New("array element is an object")
	ErrArrayRootContainsNonObject = errors.New("root array element is not an object")
	ErrDuplicateIdentifier        = errors.New("duplicate identifier after normalization")
)

// ErrorType categorizes errors by pipeline stage
type ErrorType string

const (
	ErrorTypeSelector ErrorType = "selection"
	ErrorTypeParsing  ErrorType = "parsing"
	ErrorTypeBuild    ErrorType = "build"
	ErrorTypeEmit     ErrorType = "emit"
	ErrorTypeFormat   ErrorType = "format"
	ErrorTypeOutput   ErrorType = "output"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	File    string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = fmt.Sprintf("%s: %s", e.File, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithFile tags the error with the originating file name.
func (e *AppError) WithFile(name string) *AppError {
	e.File = name
	return e
}

// NewSelectorError creates a new error related to language file selection
func NewSelectorError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeSelector,
		Message: message,
		Err:     err,
	}
}

// NewParsingError creates a new error related to JSON parsing
func NewParsingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParsing,
		Message: message,
		Err:     err,
	}
}

// NewBuildError creates a new error related to namespace tree construction
func NewBuildError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeBuild,
		Message: message,
		Err:     err,
	}
}

// NewEmitError creates a new error related to code emission
func NewEmitError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeEmit,
		Message: message,
		Err:     err,
	}
}

// NewFormatError creates a new error related to code formatting
func NewFormatError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeFormat,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output writing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// UserFriendlyError renders an error as the single diagnostic line shown
// to the user. Generation is all-or-nothing, so this line is the only
// output a failed invocation produces.
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		file := ""
		if appErr.File != "" {
			file = fmt.Sprintf(" (%s)", appErr.File)
		}
		switch appErr.Type {
		case ErrorTypeSelector:
			return fmt.Sprintf("Selection error%s: %s", file, appErr.Message)
		case ErrorTypeParsing:
			return fmt.Sprintf("JSON parsing error%s: %s", file, appErr.Message)
		case ErrorTypeBuild:
			return fmt.Sprintf("Build error%s: %s", file, appErr.Message)
		case ErrorTypeEmit:
			return fmt.Sprintf("Code generation error%s: %s", file, appErr.Message)
		case ErrorTypeFormat:
			return fmt.Sprintf("Code formatting error%s: %s", file, appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error%s: %s", file, appErr.Message)
		default:
			return fmt.Sprintf("Error%s: %s", file, appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrDirectoryNotFound) {
		return "Error: The localization directory could not be found."
	}
	if errors.Is(err, ErrFileNotFoundForLanguage) {
		return "Error: No localization file matches the requested language identifier."
	}
	if errors.Is(err, ErrMalformedJSON) {
		return "Error: The localization file contains invalid JSON."
	}
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The localization file is empty."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
