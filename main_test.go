package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath_DefaultIsDeterministic(t *testing.T) {
	CLI.Lang = "en_US"
	CLI.Output = ""
	assert.Equal(t, "en_US_lang.gen.go", outputPath())
	// Same inputs, same location: repeated runs overwrite one file
	assert.Equal(t, outputPath(), outputPath())
}

func TestOutputPath_Override(t *testing.T) {
	CLI.Lang = "en_US"
	CLI.Output = "generated/lang.go"
	assert.Equal(t, "generated/lang.go", outputPath())
}

func TestOutputPath_Stdout(t *testing.T) {
	CLI.Output = "-"
	assert.Equal(t, "-", outputPath())
}
