// Package selector locates the localization source file for a language
// identifier inside a directory.
package selector

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/statlang/statlang/internal/errors"
)

// jsonExt is the only source format the generator understands.
const jsonExt = ".json"

// Select returns the path of the file in dir whose base name, extension
// stripped, equals lang exactly (case-sensitive). The first match in
// directory order wins; a match with a missing or unsupported extension
// is fatal rather than skipped, so a stray "en_US.toml" fails loudly
// instead of silently shadowing nothing.
func Select(dir, lang string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.NewSelectorError(
			fmt.Sprintf("cannot read directory '%s': %v", dir, err),
			errors.ErrDirectoryNotFound,
		)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if strings.TrimSuffix(name, ext) != lang {
			continue
		}
		if ext == "" {
			return "", errors.NewSelectorError(
				fmt.Sprintf("a file with some extension was expected, got '%s'", name),
				errors.ErrMissingExtension,
			).WithFile(name)
		}
		if ext != jsonExt {
			return "", errors.NewSelectorError(
				fmt.Sprintf("unsupported extension '%s' on file '%s', only %s is supported", ext, name, jsonExt),
				errors.ErrUnsupportedExtension,
			).WithFile(name)
		}
		return filepath.Join(dir, name), nil
	}

	return "", errors.NewSelectorError(
		fmt.Sprintf("no file with name '%s' in directory '%s'", lang, dir),
		errors.ErrFileNotFoundForLanguage,
	)
}

// BaseName strips directory and extension from a source file path,
// yielding the name used to identify bare-scalar documents.
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
