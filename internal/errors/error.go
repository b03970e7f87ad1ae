package errors

import (
	"bufio"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryContract   Category = "contract"
	CategoryDescriptor Category = "descriptor"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// Location represents a position in a source file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Line <= 0 {
		return l.File
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// ElattrError is a structured error with a code, location and suggestion.
type ElattrError struct {
	// Code is a unique error identifier (e.g., "E201").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the file position the error refers to, if any.
	Location *Location

	// Context contains surrounding source lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ElattrError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ElattrError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a file position to the error and captures the
// surrounding lines when the file is readable.
func (e *ElattrError) WithLocation(file string, line, column int) *ElattrError {
	e.Location = &Location{File: file, Line: line, Column: column}
	if line > 0 {
		e.Context = readContextLines(file, line, 5)
	}
	return e
}

// WithFile records the file the error refers to without a position.
func (e *ElattrError) WithFile(file string) *ElattrError {
	e.Location = &Location{File: file}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *ElattrError) WithSuggestion(s string) *ElattrError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *ElattrError) WithDetail(d string) *ElattrError {
	e.Detail = d
	return e
}

// WithDetailf is WithDetail with fmt formatting.
func (e *ElattrError) WithDetailf(format string, args ...any) *ElattrError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *ElattrError) Wrap(err error) *ElattrError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates an ElattrError from a registered error code.
func New(code string) *ElattrError {
	template, ok := registry[code]
	if !ok {
		return &ElattrError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ElattrError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Hint,
	}
}

// FromError wraps a standard error in an ElattrError.
func FromError(err error, code string) *ElattrError {
	if err == nil {
		return nil
	}
	if ee, ok := err.(*ElattrError); ok {
		return ee
	}
	return New(code).Wrap(err)
}
