package emitter

import (
	"go/token"
	"strings"
	"unicode"
)

// goPredeclared holds the Go predeclared identifiers a generated type must not shadow.
var goPredeclared = map[string]bool{
	"bool":       true,
	"string":     true,
	"int":        true,
	"int8":       true,
	"int16":      true,
	"int32":      true,
	"int64":      true,
	"uint":       true,
	"uint8":      true,
	"uint16":     true,
	"uint32":     true,
	"uint64":     true,
	"uintptr":    true,
	"byte":       true,
	"rune":       true,
	"float32":    true,
	"float64":    true,
	"complex64":  true,
	"complex128": true,
	"error":      true,
	"any":        true,
	"comparable": true,
	"true":       true,
	"false":      true,
	"iota":       true,
	"nil":        true,
	"make":       true,
	"len":        true,
	"cap":        true,
	"copy":       true,
	"append":     true,
	"new":        true,
	"panic":      true,
	"recover":    true,
	"print":      true,
	"println":    true,
	"close":      true,
	"delete":     true,
	"min":        true,
	"max":        true,
	"clear":      true,
}

// isGoName reports whether s can name a Go package or top-level type
func isGoName(s string) bool {
	return s != "_" && token.IsIdentifier(s) && !goPredeclared[s]
}

// cReserved holds the C keywords and the standard type names the generated
// header must not redefine.
var cReserved = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "struct": true, "switch": true, "typedef": true, "union": true,
	"unsigned": true, "void": true, "volatile": true, "while": true,
	"_Alignas": true, "_Alignof": true, "_Atomic": true, "_Bool": true,
	"_Complex": true, "_Generic": true, "_Imaginary": true, "_Noreturn": true,
	"_Static_assert": true, "_Thread_local": true,
	"bool": true, "true": true, "false": true, "size_t": true, "NULL": true,
}

// isCName reports whether s can name a C typedef
func isCName(s string) bool {
	return s != "_" && token.IsIdentifier(s) && !cReserved[s]
}

// snakeCase converts a CamelCase identifier to snake_case.
// Acronyms stay together: "HTTPStatus" becomes "http_status".
func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
