package formatter

import (
	"go/format"
	"strings"

	"github.com/statlang/statlang/internal/errors"
)

// Formatter is responsible for formatting generated code according to
// standard Go conventions
type Formatter struct{}

// NewFormatter creates a new Formatter instance
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format takes Go code as a string and returns properly formatted Go
// code. The emitter produces parseable source already; this pass
// normalizes spacing and struct field alignment so the generated file
// is indistinguishable from gofmt output.
func (f *Formatter) Format(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", nil
	}

	formatted, err := format.Source([]byte(code))
	if err != nil {
		return "", errors.NewFormatError("failed to parse generated Go code", err)
	}

	return string(formatted), nil
}
