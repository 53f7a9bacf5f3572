// Package source discovers enumeration specs declared in Go comments.
//
// A spec is declared with an @enum annotation anywhere in a file:
//
//	// @enum(Color, members: [Red, Green, Blue])
//	// @enum(name: Shape, members: "Circle,Square")
//	// @enum Direction North East South West
package source

import (
	"fmt"
	"go/ast"
	"go/token"
	"sort"

	"golang.org/x/tools/go/packages"

	"github.com/pablor21/enumgen/annotations"
	"github.com/pablor21/enumgen/types"
	"github.com/pablor21/enumgen/utils"
)

// AnnotationName is the annotation that declares an enumeration
const AnnotationName = "enum"

// EnumAnnotation declares the parameters accepted by @enum
var EnumAnnotation = annotations.AnnotationSpec{
	Name:        AnnotationName,
	Aliases:     []string{"enumgen"},
	Description: "Declares an enumeration to generate lookup code for",
	Params: []annotations.AnnotationParam{
		{Name: "name", Description: "Enumeration name, or the first positional parameter"},
		{Name: "members", Aliases: []string{"values"}, Description: "Members in declaration order"},
	},
	MaxPositional: -1,
}

var definitions = annotations.Definitions{Annotations: []annotations.AnnotationSpec{EnumAnnotation}}

// Scan loads the packages matched by patterns, relative to dir, and returns
// the specs they declare ordered by file name and position.
func Scan(dir string, patterns ...string) ([]types.EnumSpec, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	pkgs, err := utils.LoadPackages(dir, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var (
		fset  *token.FileSet
		files []*ast.File
	)
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			// list and unknown errors mean the package was never parsed
			if e.Kind == packages.ListError || e.Kind == packages.UnknownError {
				return nil, fmt.Errorf("package %s: %v", pkg.PkgPath, e)
			}
		}
		if fset == nil {
			fset = pkg.Fset
		}
		files = append(files, pkg.Syntax...)
	}
	return FromFiles(fset, files)
}

type located struct {
	spec types.EnumSpec
	pos  token.Position
}

// FromFiles extracts specs from already parsed files
func FromFiles(fset *token.FileSet, files []*ast.File) ([]types.EnumSpec, error) {
	var found []located
	for _, f := range files {
		for _, ann := range definitions.Select(annotations.Parse(f.Comments), AnnotationName) {
			pos := annotations.Position(fset, ann)
			spec, err := FromAnnotation(ann)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pos, err)
			}
			found = append(found, located{spec: spec, pos: pos})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].pos.Filename != found[j].pos.Filename {
			return found[i].pos.Filename < found[j].pos.Filename
		}
		return found[i].pos.Offset < found[j].pos.Offset
	})

	specs := make([]types.EnumSpec, len(found))
	for i, l := range found {
		specs[i] = l.spec
	}
	return specs, nil
}

// FromAnnotation converts one @enum annotation into a spec. The name is the
// "name" parameter or the first positional argument. Members come from the
// "members" (or "values") parameter, or from the remaining positional arguments.
// Member validation is left to the engine.
func FromAnnotation(ann annotations.Annotation) (types.EnumSpec, error) {
	if err := EnumAnnotation.Check(ann); err != nil {
		return types.EnumSpec{}, err
	}
	positional := ann.Positional

	name, ok := ann.GetParamValue("name")
	if !ok {
		if len(positional) == 0 {
			return types.EnumSpec{}, fmt.Errorf("%s: missing enum name", ann.RawText)
		}
		name, positional = positional[0], positional[1:]
	}

	spec := types.EnumSpec{Name: name}
	if members, ok := ann.GetParamStringList("members", "values"); ok {
		spec.Members = members
		return spec, nil
	}
	for _, p := range positional {
		spec.Members = append(spec.Members, annotations.SplitList(p)...)
	}
	return spec, nil
}
