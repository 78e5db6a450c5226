package parser

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/statlang/statlang/internal/errors"
	"github.com/statlang/statlang/internal/models"
)

// Parse decodes a single JSON document from reader into a models.Value
// tree. Decoding is token by token so that object member order is the
// source order, and numbers keep their original literal text. The
// encoding/json family loses both: maps shuffle keys and float64
// re-formats literals like 1e37.
func Parse(reader io.Reader) (models.Value, error) {
	dec := json.NewDecoder(reader)
	dec.UseNumber() // numbers arrive as json.Number, preserving the source literal

	tok, err := dec.Token()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		return nil, syntaxError(err)
	}

	value, err := parseValue(dec, tok)
	if err != nil {
		return nil, err
	}

	// A document is exactly one JSON value. Anything after it, other
	// than whitespace, is an error.
	if _, err := dec.Token(); err == nil {
		return nil, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	} else if !stderrors.Is(err, io.EOF) {
		return nil, errors.NewParsingError("invalid trailing data after first JSON value", errors.ErrMalformedJSON)
	}

	return value, nil
}

// parseValue consumes one complete value whose first token is tok.
func parseValue(dec *json.Decoder, tok json.Token) (models.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, errors.NewParsingError(fmt.Sprintf("unexpected delimiter %q", t.String()), errors.ErrMalformedJSON)
		}
	case string:
		return models.String(t), nil
	case json.Number:
		return models.Number(t), nil
	case bool:
		return models.Bool(t), nil
	case nil:
		return models.Null{}, nil
	default:
		return nil, errors.NewParsingError(fmt.Sprintf("unexpected token %v", tok), errors.ErrMalformedJSON)
	}
}

func parseObject(dec *json.Decoder) (models.Object, error) {
	obj := models.Object{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, syntaxError(err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.NewParsingError(fmt.Sprintf("object key is not a string: %v", tok), errors.ErrMalformedJSON)
		}
		tok, err = dec.Token()
		if err != nil {
			return nil, syntaxError(err)
		}
		value, err := parseValue(dec, tok)
		if err != nil {
			return nil, err
		}
		obj = append(obj, models.Member{Key: key, Value: value})
	}
}

func parseArray(dec *json.Decoder) (models.Array, error) {
	arr := models.Array{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, syntaxError(err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return arr, nil
		}
		value, err := parseValue(dec, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
}

// syntaxError maps a decoder error onto the application error kinds.
func syntaxError(err error) error {
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParsingError("unexpected end of JSON input", errors.ErrMalformedJSON)
	}
	var synErr *json.SyntaxError
	if stderrors.As(err, &synErr) {
		return errors.NewParsingError(
			fmt.Sprintf("JSON syntax error at offset %d: %v", synErr.Offset, synErr),
			errors.ErrMalformedJSON,
		)
	}
	return errors.NewParsingError(fmt.Sprintf("failed to decode JSON: %v", err), errors.ErrMalformedJSON)
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewParsingError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.NewParsingError(
			fmt.Sprintf("cannot read file '%s': %v", filePath, err),
			errors.ErrUnreadableFile,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	value, err := Parse(file)
	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return nil, appErr.WithFile(filePath)
		}
		return nil, err
	}
	return value, nil
}
