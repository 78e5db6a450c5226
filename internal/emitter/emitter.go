// Package emitter serializes a namespace tree into Go source text.
//
// A namespace renders as a nested anonymous struct and the whole tree
// becomes a single package-level var, so the generated file needs no
// type names and no imports:
//
//	var lang = struct {
//		PING  string
//		dummy struct{ FOO string }
//	}{
//		PING:  "pong",
//		dummy: struct{ FOO string }{FOO: "buzz"},
//	}
//
// Scalar constants are string fields, array constants are [N]string
// fields, nested namespaces are nested struct fields. Field order is
// source document order throughout.
package emitter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/statlang/statlang/internal/errors"
	"github.com/statlang/statlang/internal/models"
)

// DefaultFileHeader marks the output as generated, in the form the Go
// toolchain recognizes.
const DefaultFileHeader = "// Code generated by statlang. DO NOT EDIT."

// Emitter renders namespace trees as Go source files.
type Emitter struct{}

// NewEmitter creates a new Emitter instance
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit renders ns as a complete Go source file for packageName. header
// overrides the generated-code comment when non-empty. Emission is pure
// text assembly; it either returns the whole file or nothing.
func (e *Emitter) Emit(ns *models.Namespace, packageName, header string) (string, error) {
	if ns == nil {
		return "", errors.NewEmitError("nothing to emit: namespace tree is nil", nil)
	}
	if header == "" {
		header = DefaultFileHeader
	}
	name := ns.Name
	if name == "" {
		name = models.DefaultRootName
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("\n\n")
	buf.WriteString(fmt.Sprintf("package %s\n\n", packageName))
	buf.WriteString(fmt.Sprintf("var %s = ", name))
	writeLiteral(&buf, ns, 0)
	buf.WriteString("\n")

	return buf.String(), nil
}

// writeLiteral writes the struct type of ns immediately followed by its
// composite literal. Go requires the anonymous type to be repeated in
// nested literals, so both halves recurse in lockstep.
func writeLiteral(buf *bytes.Buffer, ns *models.Namespace, depth int) {
	writeStructType(buf, ns, depth)
	if len(ns.Entries) == 0 {
		buf.WriteString("{}")
		return
	}
	buf.WriteString("{\n")
	for _, entry := range ns.Entries {
		indent(buf, depth+1)
		switch ent := entry.(type) {
		case *models.ConstantEntry:
			buf.WriteString(ent.Identifier)
			buf.WriteString(": ")
			writeConstantValue(buf, ent.Value)
			buf.WriteString(",\n")
		case *models.Namespace:
			buf.WriteString(ent.Name)
			buf.WriteString(": ")
			writeLiteral(buf, ent, depth+1)
			buf.WriteString(",\n")
		}
	}
	indent(buf, depth)
	buf.WriteString("}")
}

// writeStructType writes the anonymous struct type describing ns.
func writeStructType(buf *bytes.Buffer, ns *models.Namespace, depth int) {
	if len(ns.Entries) == 0 {
		buf.WriteString("struct{}")
		return
	}
	buf.WriteString("struct {\n")
	for _, entry := range ns.Entries {
		indent(buf, depth+1)
		switch ent := entry.(type) {
		case *models.ConstantEntry:
			buf.WriteString(ent.Identifier)
			buf.WriteString(" ")
			buf.WriteString(fieldType(ent.Value))
			buf.WriteString("\n")
		case *models.Namespace:
			buf.WriteString(ent.Name)
			buf.WriteString(" ")
			writeStructType(buf, ent, depth+1)
			buf.WriteString("\n")
		}
	}
	indent(buf, depth)
	buf.WriteString("}")
}

// writeConstantValue writes the literal for one constant.
func writeConstantValue(buf *bytes.Buffer, rendered models.Rendered) {
	switch val := rendered.(type) {
	case models.ScalarText:
		buf.WriteString(strconv.Quote(string(val)))
	case models.ArrayText:
		buf.WriteString(fieldType(rendered))
		buf.WriteString("{")
		for i, elem := range val {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(strconv.Quote(elem))
		}
		buf.WriteString("}")
	}
}

// fieldType is the Go type of a constant field: string for scalars, a
// fixed-length string array for array constants.
func fieldType(rendered models.Rendered) string {
	switch val := rendered.(type) {
	case models.ArrayText:
		return fmt.Sprintf("[%d]string", len(val))
	default:
		return "string"
	}
}

func indent(buf *bytes.Buffer, depth int) {
	buf.WriteString(strings.Repeat("\t", depth))
}
