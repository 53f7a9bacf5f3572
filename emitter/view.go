package emitter

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/pablor21/enumgen/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))

// memberView is one member as the templates see it
type memberView struct {
	Name        string
	Const       string
	Quoted      string
	QuotedLower string
	Length      int
	// FirstLower is false when an earlier member has the same lower-case form;
	// case-insensitive lookup resolves to the earliest such member.
	FirstLower bool
}

type enumView struct {
	Name        string
	Package     string
	Header      []string
	Sentinel    int
	InvalidName string
	Count       int
	Last        int
	Longest     int
	Members     []memberView
}

func newEnumView(a *types.Artifact, opts RenderOptions, constName func(enum, member string) string) enumView {
	v := enumView{
		Name:        a.Name(),
		Package:     opts.Package,
		Sentinel:    a.Sentinel(),
		InvalidName: types.InvalidName,
		Count:       a.Count(),
		Last:        a.Count() - 1,
		Longest:     a.LongestMemberNameLength(),
		Members:     make([]memberView, a.Count()),
	}
	if h := strings.TrimSpace(opts.Header); h != "" {
		v.Header = strings.Split(h, "\n")
	}

	seenLower := make(map[string]bool, a.Count())
	for i := range a.Count() {
		m, lower := a.Member(i), a.LowerMember(i)
		v.Members[i] = memberView{
			Name:        m,
			Const:       constName(a.Name(), m),
			Quoted:      strconv.Quote(m),
			QuotedLower: strconv.Quote(lower),
			Length:      len(m),
			FirstLower:  !seenLower[lower],
		}
		seenLower[lower] = true
	}
	return v
}

func execute(name string, v enumView) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, v); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
