package annotations

import (
	"go/ast"
	"go/token"
	"strings"
)

// Parse extracts annotations from comment groups. Every comment line that
// starts with "@" is one annotation.
func Parse(comments []*ast.CommentGroup) []Annotation {
	var out []Annotation

	for _, cg := range comments {
		if cg == nil {
			continue
		}
		for _, c := range cg.List {
			text := strings.TrimSpace(c.Text)
			text = strings.TrimPrefix(text, "//")
			text = strings.TrimPrefix(text, "/*")
			text = strings.TrimSuffix(text, "*/")

			for line := range strings.SplitSeq(text, "\n") {
				line = strings.TrimSpace(line)
				line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
				if !strings.HasPrefix(line, "@") {
					continue
				}
				if ann, ok := ParseLine(line); ok {
					ann.Pos = c.Pos()
					out = append(out, ann)
				}
			}
		}
	}

	return out
}

// ParseLine parses a single annotation in one of the forms
//
//	@name
//	@name(arg, key: value, list: [a, b])
//	@name arg key=value list=[a, b]
func ParseLine(line string) (Annotation, bool) {
	line = strings.TrimPrefix(strings.TrimSpace(line), "@")

	end := 0
	for end < len(line) && isNameChar(line[end]) {
		end++
	}
	if end == 0 {
		return Annotation{}, false
	}

	ann := Annotation{
		Name:    line[:end],
		Params:  make(map[string]string),
		RawText: "@" + line,
	}

	rest := strings.TrimSpace(line[end:])
	var parts []string
	if strings.HasPrefix(rest, "(") {
		rest = rest[1:]
		if i := strings.LastIndex(rest, ")"); i != -1 {
			rest = rest[:i]
		}
		parts = split(rest, func(r rune) bool { return r == ',' })
	} else {
		parts = split(rest, func(r rune) bool { return r == ' ' || r == '\t' })
	}

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if key, value, ok := cutParam(part); ok {
			ann.Params[strings.ToLower(key)] = unquote(value)
			continue
		}
		ann.Positional = append(ann.Positional, unquote(part))
	}

	return ann, true
}

// split cuts s at every rune for which sep is true, ignoring separators
// inside quotes or square brackets.
func split(s string, sep func(rune) bool) []string {
	var (
		parts   []string
		current strings.Builder
		quote   rune
		depth   int
	)
	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '[':
			depth++
		case r == ']' && depth > 0:
			depth--
		case depth == 0 && sep(r):
			parts = append(parts, current.String())
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// cutParam splits "key: value" or "key=value" when the separator is outside quotes
func cutParam(part string) (key, value string, ok bool) {
	var quote rune
	for i, r := range part {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '[':
			return "", "", false
		case r == ':' || r == '=':
			key = strings.TrimSpace(part[:i])
			if key == "" {
				return "", "", false
			}
			return key, strings.TrimSpace(part[i+1:]), true
		}
	}
	return "", "", false
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func isNameChar(c byte) bool {
	return c == '_' || c == '.' || c == '-' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// Position resolves the source position of ann
func Position(fset *token.FileSet, ann Annotation) token.Position {
	if fset == nil || !ann.Pos.IsValid() {
		return token.Position{}
	}
	return fset.Position(ann.Pos)
}
