// Package annotations parses "@name(params)" annotations out of Go comments.
package annotations

import (
	"go/token"
	"strings"
)

// Annotation represents a parsed annotation from Go comments
type Annotation struct {
	Name       string            // e.g. "enum"
	Params     map[string]string // named parameters, keys lower-cased
	Positional []string          // parameters without a key, in order
	RawText    string            // original text
	Pos        token.Pos         // position of the comment holding the annotation
}

// GetParamValue returns the value of a named parameter.
// It first checks the exact name, then the aliases, ignoring case.
func (a *Annotation) GetParamValue(name string, aliases ...string) (string, bool) {
	for _, n := range append([]string{name}, aliases...) {
		if val, ok := a.Params[strings.ToLower(n)]; ok {
			return val, true
		}
	}
	return "", false
}

// GetParamValueOrDefault returns the named parameter or defaultValue
func (a *Annotation) GetParamValueOrDefault(name string, defaultValue string, aliases ...string) string {
	if val, ok := a.GetParamValue(name, aliases...); ok {
		return val
	}
	return defaultValue
}

// HasParam checks if an annotation has a parameter with the given name or aliases.
func (a *Annotation) HasParam(name string, aliases ...string) bool {
	_, ok := a.GetParamValue(name, aliases...)
	return ok
}

// GetParamStringList returns a list parameter. Both "[a, b, c]" and "a,b;c"
// are accepted; items are trimmed and unquoted, empty items dropped.
func (a *Annotation) GetParamStringList(name string, aliases ...string) ([]string, bool) {
	raw, ok := a.GetParamValue(name, aliases...)
	if !ok {
		return nil, false
	}
	return SplitList(raw), true
}

// SplitList splits "[a, b c;d]" into its items
func SplitList(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")

	var list []string
	for _, p := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	}) {
		if p = unquote(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
