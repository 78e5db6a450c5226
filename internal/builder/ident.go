package builder

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// goKeywords are the names that cannot appear as a struct field in the
// generated code. Only namespace identifiers can collide with them:
// constant identifiers are uppercased and Go keywords are all lowercase.
var goKeywords = map[string]struct{}{
	"break": {}, "case": {}, "chan": {}, "const": {}, "continue": {},
	"default": {}, "defer": {}, "else": {}, "fallthrough": {}, "for": {},
	"func": {}, "go": {}, "goto": {}, "if": {}, "import": {},
	"interface": {}, "map": {}, "package": {}, "range": {}, "return": {},
	"select": {}, "struct": {}, "switch": {}, "type": {}, "var": {},
}

// constName maps a JSON key (or file base name) to a constant
// identifier. The default transformation is a pure case-fold: every
// character uppercased, existing separators preserved, no word
// boundaries invented. With naming.screaming_snake enabled the key goes
// through word-boundary conversion instead ("someKey" -> "SOME_KEY").
func (b *Builder) constName(key string) string {
	if b.cfg.Naming.ScreamingSnake {
		return sanitize(strcase.ToScreamingSnake(key))
	}
	return sanitize(strings.ToUpper(key))
}

// namespaceName maps a JSON key to a namespace identifier. Casing is
// preserved so nested names stay human-legible.
func (b *Builder) namespaceName(key string) string {
	name := sanitize(key)
	if _, ok := goKeywords[name]; ok {
		name += "_"
	}
	return name
}

// sanitize substitutes characters illegal in a Go identifier with '_'
// and shields a leading digit with a '_' prefix. Substitution rather
// than rejection: locale files routinely use keys like "app.title" or
// "not-found", and any collision the substitution introduces is caught
// by the builder's duplicate check.
func sanitize(key string) string {
	if key == "" {
		return "_"
	}

	var sb strings.Builder
	sb.Grow(len(key) + 1)
	for i, r := range key {
		switch {
		case r == '_' || unicode.IsLetter(r):
			sb.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
