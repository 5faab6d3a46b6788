package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/mitchellh/go-wordwrap"
)

const ParserErrorLevelError = "error"
const ParserErrorLevelWarning = "warning"

// ParserError is a detailed error that is returned when the loader
// configuration file can not be parsed
type ParserError struct {
	Filename string
	Line     int
	Column   int
	Message  string
	Level    string
}

// Error pretty prints the error message as a string, including the lines of
// the source file that surround the problem
func (p *ParserError) Error() string {
	err := strings.Builder{}
	err.WriteString("Error:\n")

	errLines := strings.Split(wordwrap.WrapString(p.Message, 80), "\n")
	for _, l := range errLines {
		err.WriteString("  " + l + "\n")
	}

	err.WriteString("\n")
	err.WriteString("  " + fmt.Sprintf("%s:%d,%d\n", p.Filename, p.Line, p.Column))

	file, readErr := os.ReadFile(p.Filename)
	if readErr != nil {
		return err.String()
	}

	lines := strings.Split(string(file), "\n")

	startLine := p.Line - 3
	if startLine < 0 {
		startLine = 0
	}

	endLine := p.Line + 2
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	for i := startLine; i < endLine; i++ {
		codelines := strings.Split(wordwrap.WrapString(lines[i], 70), "\n")

		style := "\033[2m"
		if i == p.Line-1 {
			style = "\033[1m"
		}

		err.WriteString(fmt.Sprintf("%s  %5d | %s\033[0m\n", style, i+1, codelines[0]))

		for _, l := range codelines[1:] {
			err.WriteString(fmt.Sprintf("%s        : %s\033[0m\n", style, l))
		}
	}

	return err.String()
}

// NewParserError creates a new ParserError with basic parameters
func NewParserError(filename string, line, column int, level, message string) *ParserError {
	return &ParserError{
		Filename: filename,
		Line:     line,
		Column:   column,
		Level:    level,
		Message:  message,
	}
}

// NewParserErrorFromHCLDiag creates a ParserError from a HCL diagnostic
func NewParserErrorFromHCLDiag(diag *hcl.Diagnostic, filename string) *ParserError {
	line := 0
	column := 0
	if diag.Subject != nil {
		line = diag.Subject.Start.Line
		column = diag.Subject.Start.Column

		if diag.Subject.Filename != "" {
			filename = diag.Subject.Filename
		}
	}

	level := ParserErrorLevelError
	if diag.Severity == hcl.DiagWarning {
		level = ParserErrorLevelWarning
	}

	return &ParserError{
		Filename: filename,
		Line:     line,
		Column:   column,
		Level:    level,
		Message:  fmt.Sprintf("unable to parse file: %s", diag.Detail),
	}
}
