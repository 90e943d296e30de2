// Package errors formats golox diagnostics with source position
// information, rendering a "row:col: Kind Error: message" line and
// colorizing it with github.com/fatih/color for terminal output.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/loxlang/golox/internal/token"
)

// Kind distinguishes a lexer/parser error from a runtime one.
type Kind string

const (
	Syntax  Kind = "Syntax"
	Runtime Kind = "Runtime"
)

// SourceError is a single diagnostic with its kind, position and message.
type SourceError struct {
	Kind    Kind
	Pos     token.Position
	Message string
}

func New(kind Kind, pos token.Position, format string, args ...any) *SourceError {
	return &SourceError{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface with the plain, uncolored
// "row:col: Kind Error: message" line.
func (e *SourceError) Error() string {
	return fmt.Sprintf("%d:%d: %s Error: %s", e.Pos.Row, e.Pos.Col, e.Kind, e.Message)
}

var (
	kindColor = color.New(color.FgRed, color.Bold)
	locColor  = color.New(color.FgYellow)
)

// Format renders e for a terminal, colorizing the location and the "Kind
// Error" marker when color is true.
func (e *SourceError) Format(useColor bool) string {
	if !useColor {
		return e.Error()
	}
	var sb strings.Builder
	sb.WriteString(locColor.Sprintf("%d:%d:", e.Pos.Row, e.Pos.Col))
	sb.WriteByte(' ')
	sb.WriteString(kindColor.Sprintf("%s Error:", e.Kind))
	sb.WriteByte(' ')
	sb.WriteString(e.Message)
	return sb.String()
}

// FormatAll renders one line per error, newline-terminated.
func FormatAll(errs []*SourceError, useColor bool) string {
	var sb strings.Builder
	for _, e := range errs {
		sb.WriteString(e.Format(useColor))
		sb.WriteByte('\n')
	}
	return sb.String()
}
