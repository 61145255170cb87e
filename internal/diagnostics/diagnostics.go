// Package diagnostics defines the build-time error values shared by all
// pipeline stages. Every failure is fatal: the driver prints the collected
// diagnostics and exits without writing output.
package diagnostics

import (
	"fmt"

	"github.com/bindweld/bindweld/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // illegal character

	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // unexpected end of input

	// Locator
	ErrM001 ErrorCode = "M001" // module path segment not found

	// Transformer
	ErrT001 ErrorCode = "T001" // unsupported argument shape
	ErrT002 ErrorCode = "T002" // return type violates the wrapper convention

	// Driver
	ErrW001 ErrorCode = "W001" // output write or format failure
	ErrC001 ErrorCode = "C001" // data-contract preflight failure
	ErrX001 ErrorCode = "X001" // configuration error
)

// DiagnosticError is a coded build error tied to a source position.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	File    string
	Message string
}

// NewError creates a diagnostic for the given code and token.
func NewError(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Token:   tok,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *DiagnosticError) Error() string {
	pos := ""
	if e.Token.Line > 0 {
		pos = fmt.Sprintf("%d:%d: ", e.Token.Line, e.Token.Column)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s[%s] %s", e.File, pos, e.Code, e.Message)
	}
	return fmt.Sprintf("%s[%s] %s", pos, e.Code, e.Message)
}
