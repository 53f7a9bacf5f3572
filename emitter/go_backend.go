package emitter

import (
	"fmt"

	"github.com/pablor21/enumgen/types"
)

// DefaultGoPackage is used when no package name is configured
const DefaultGoPackage = "enums"

// goHelpers are the suffixes the Go template declares next to the member constants
var goHelpers = []string{
	"Invalid", "Count", "LongestString", "FromIndex", "FromString",
	"FromCaseInsensitiveString", "Values",
}

// GoBackend renders a Go source file per enumeration
type GoBackend struct{}

func NewGoBackend() *GoBackend { return &GoBackend{} }

func (b *GoBackend) Name() string { return "go" }

func (b *GoBackend) Formatter() string { return "goimports" }

func (b *GoBackend) FileName(enumName string) string {
	return snakeCase(enumName) + "_enum.go"
}

func (b *GoBackend) Render(a *types.Artifact, opts RenderOptions) ([]byte, error) {
	if opts.Package == "" {
		opts.Package = DefaultGoPackage
	}
	if !isGoName(opts.Package) {
		return nil, fmt.Errorf("package %q is not a valid Go package name", opts.Package)
	}
	if !isGoName(a.Name()) {
		return nil, fmt.Errorf("enum name %q is not usable as a Go type name", a.Name())
	}

	reserved := make(map[string]bool, len(goHelpers))
	for _, h := range goHelpers {
		reserved[a.Name()+h] = true
	}
	for _, m := range a.Members() {
		if c := goConstName(a.Name(), m); reserved[c] {
			return nil, fmt.Errorf("member %q renders as %s, which clashes with a generated helper", m, c)
		}
	}

	return execute("go.tmpl", newEnumView(a, opts, goConstName))
}

// Declarations lists the type, its helpers and every member constant
func (b *GoBackend) Declarations(spec types.EnumSpec) []string {
	names := []string{spec.Name, "_" + spec.Name + "Members", "_" + spec.Name + "Names"}
	for _, h := range goHelpers {
		names = append(names, spec.Name+h)
	}
	for _, m := range spec.Members {
		names = append(names, goConstName(spec.Name, m))
	}
	return names
}

func goConstName(enum, member string) string {
	return enum + member
}
