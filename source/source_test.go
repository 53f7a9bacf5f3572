package source

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablor21/enumgen/annotations"
	"github.com/pablor21/enumgen/types"
)

func parseFiles(t *testing.T, srcs map[string]string) (*token.FileSet, []*ast.File) {
	t.Helper()
	fset := token.NewFileSet()
	var files []*ast.File
	for name, src := range srcs {
		f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		require.NoError(t, err)
		files = append(files, f)
	}
	return fset, files
}

func TestFromAnnotation(t *testing.T) {
	tests := []struct {
		line string
		want types.EnumSpec
	}{
		{`@enum(Color, members: [Red, Green, Blue])`, types.NewEnumSpec("Color", "Red", "Green", "Blue")},
		{`@enum(name: Shape, members: "Circle,Square")`, types.NewEnumSpec("Shape", "Circle", "Square")},
		{`@enum(name: Shape, values: [Circle])`, types.NewEnumSpec("Shape", "Circle")},
		{`@enum Direction North East South West`, types.NewEnumSpec("Direction", "North", "East", "South", "West")},
		{`@enum Direction [North, East]`, types.NewEnumSpec("Direction", "North", "East")},
		{`@enum(Empty)`, types.EnumSpec{Name: "Empty"}},
	}
	for _, tt := range tests {
		ann, ok := annotations.ParseLine(tt.line)
		require.True(t, ok, tt.line)
		got, err := FromAnnotation(ann)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestFromAnnotation_MissingName(t *testing.T) {
	ann, _ := annotations.ParseLine(`@enum(members: [A, B])`)
	_, err := FromAnnotation(ann)
	assert.ErrorContains(t, err, "missing enum name")
}

func TestFromAnnotation_UnknownParameter(t *testing.T) {
	ann, _ := annotations.ParseLine(`@enum(Color, memebrs: [Red])`)
	_, err := FromAnnotation(ann)
	assert.ErrorContains(t, err, `unknown parameter "memebrs"`)
}

func TestFromFiles_OrdersByFileAndPosition(t *testing.T) {
	fset, files := parseFiles(t, map[string]string{
		"b.go": "package m\n\n// @enum Second A B\n\n// @enumgen Third C\nvar _ = 0\n",
		"a.go": "package m\n\n// @enum(First, members: [X, Y])\n// @schema(ignored)\nvar _ = 1\n",
	})

	specs, err := FromFiles(fset, files)
	require.NoError(t, err)
	require.Len(t, specs, 3)
	assert.Equal(t, "First", specs[0].Name)
	assert.Equal(t, "Second", specs[1].Name)
	assert.Equal(t, "Third", specs[2].Name)
}

func TestFromFiles_ReportsPosition(t *testing.T) {
	fset, files := parseFiles(t, map[string]string{
		"bad.go": "package m\n\n// @enum(members: [A])\nvar _ = 0\n",
	})
	_, err := FromFiles(fset, files)
	assert.ErrorContains(t, err, "bad.go:3")
}

func TestScan_LoadsModulePackages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/models\n\ngo 1.21\n")
	writeFile(t, filepath.Join(dir, "models", "models.go"), `package models

// Keyword lists the reserved words.
// @enum(Keyword, members: [Null, True, False])
type placeholder struct{}

// @enum NumberType Signed Unsigned Float
`)

	specs, err := Scan(dir, "./...")
	require.NoError(t, err)
	assert.Equal(t, []types.EnumSpec{
		types.NewEnumSpec("Keyword", "Null", "True", "False"),
		types.NewEnumSpec("NumberType", "Signed", "Unsigned", "Float"),
	}, specs)
}

func TestScan_NoPatterns(t *testing.T) {
	specs, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
