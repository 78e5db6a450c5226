package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_NormalizesSpacing(t *testing.T) {
	code := "package main\n\nvar  lang  =  struct {\nPING string\n}{\nPING: \"pong\",\n}\n"

	result, err := NewFormatter().Format(code)
	require.NoError(t, err)

	expected := `package main

var lang = struct {
	PING string
}{
	PING: "pong",
}
`
	assert.Equal(t, expected, result)
}

func TestFormat_AlignsStructFields(t *testing.T) {
	code := "package main\n\nvar lang = struct {\nFOO string\nSOME [3]string\n}{\nFOO: \"buzz\",\nSOME: [3]string{\"none\", \"or\", \"0\"},\n}\n"

	result, err := NewFormatter().Format(code)
	require.NoError(t, err)
	assert.Contains(t, result, "FOO  string")
	assert.Contains(t, result, "SOME [3]string")
}

func TestFormat_EmptyInput(t *testing.T) {
	result, err := NewFormatter().Format("   \n ")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestFormat_InvalidCode(t *testing.T) {
	_, err := NewFormatter().Format("package main\n\nvar lang = struct {")
	assert.Error(t, err)
}

func TestFormat_Idempotent(t *testing.T) {
	code := "package main\n\nvar lang = struct {\nPING string\n}{\nPING: \"pong\",\n}\n"

	once, err := NewFormatter().Format(code)
	require.NoError(t, err)
	twice, err := NewFormatter().Format(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
