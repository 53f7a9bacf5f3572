package emitter

import (
	"fmt"
	"strings"

	"github.com/pablor21/enumgen/types"
)

// cHelpers are the suffixes the C template declares next to the enumerators
var cHelpers = []string{
	"Count", "LongestString", "Members", "FromIndex", "FromString",
	"FromCaseInsensitiveString", "ToString",
}

// CBackend renders a self-contained C header per enumeration
type CBackend struct{}

func NewCBackend() *CBackend { return &CBackend{} }

func (b *CBackend) Name() string { return "c" }

func (b *CBackend) Formatter() string { return "clang-format" }

func (b *CBackend) FileName(enumName string) string {
	return enumName + ".h"
}

func (b *CBackend) Render(a *types.Artifact, opts RenderOptions) ([]byte, error) {
	if !isCName(a.Name()) {
		return nil, fmt.Errorf("enum name %q is not usable as a C type name", a.Name())
	}
	// header lines are emitted inside /* */ comments
	opts.Header = strings.ReplaceAll(opts.Header, "*/", "* /")
	return execute("c.tmpl", newEnumView(a, opts, cConstName))
}

// Declarations lists the typedefs, enumerators and helper functions
func (b *CBackend) Declarations(spec types.EnumSpec) []string {
	names := []string{spec.Name, "p" + spec.Name, cConstName(spec.Name, types.InvalidName)}
	for _, h := range cHelpers {
		names = append(names, spec.Name+h)
	}
	for _, m := range spec.Members {
		names = append(names, cConstName(spec.Name, m))
	}
	return names
}

func cConstName(enum, member string) string {
	return enum + "_" + member
}
