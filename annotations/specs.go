package annotations

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// AnnotationParam declares one named parameter of an annotation
type AnnotationParam struct {
	Name        string   `yaml:"name" json:"name"`
	Aliases     []string `yaml:"aliases" json:"aliases"`
	Description string   `yaml:"description" json:"description"`
	IsRequired  bool     `yaml:"isRequired" json:"isRequired"`
}

func (p AnnotationParam) matches(key string) bool {
	if strings.EqualFold(key, p.Name) {
		return true
	}
	for _, alias := range p.Aliases {
		if strings.EqualFold(key, alias) {
			return true
		}
	}
	return false
}

// AnnotationSpec declares an annotation: its name, aliases and the
// parameters it accepts
type AnnotationSpec struct {
	Name        string            `yaml:"name" json:"name"`
	Aliases     []string          `yaml:"aliases" json:"aliases"`
	Description string            `yaml:"description" json:"description"`
	Params      []AnnotationParam `yaml:"params" json:"params"`
	// MaxPositional limits the number of unnamed parameters, -1 for no limit
	MaxPositional int `yaml:"maxPositional" json:"maxPositional"`
}

// Check reports unknown parameters, missing required ones and surplus
// positional arguments
func (s AnnotationSpec) Check(ann Annotation) error {
	var errs []error

	keys := make([]string, 0, len(ann.Params))
	for k := range ann.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !s.knows(k) {
			errs = append(errs, fmt.Errorf("@%s: unknown parameter %q", s.Name, k))
		}
	}

	for _, p := range s.Params {
		if p.IsRequired && !ann.HasParam(p.Name, p.Aliases...) {
			errs = append(errs, fmt.Errorf("@%s: missing required parameter %q", s.Name, p.Name))
		}
	}

	if s.MaxPositional >= 0 && len(ann.Positional) > s.MaxPositional {
		errs = append(errs, fmt.Errorf("@%s: accepts at most %d positional parameters, got %d", s.Name, s.MaxPositional, len(ann.Positional)))
	}
	return errors.Join(errs...)
}

func (s AnnotationSpec) knows(key string) bool {
	for _, p := range s.Params {
		if p.matches(key) {
			return true
		}
	}
	return false
}

// Definitions is a set of annotation specs
type Definitions struct {
	Annotations []AnnotationSpec `json:"annotations"`
}

// GetAnnotationSpecByName finds an annotation specification by name or alias
func (d Definitions) GetAnnotationSpecByName(name string) *AnnotationSpec {
	name = NormalizeAnnotationName(name)
	for i := range d.Annotations {
		if NormalizeAnnotationName(d.Annotations[i].Name) == name {
			return &d.Annotations[i]
		}
		for _, alias := range d.Annotations[i].Aliases {
			if NormalizeAnnotationName(alias) == name {
				return &d.Annotations[i]
			}
		}
	}
	return nil
}

// Select returns the annotations declared by spec, matched by name or alias
func (d Definitions) Select(anns []Annotation, spec string) []Annotation {
	target := d.GetAnnotationSpecByName(spec)
	if target == nil {
		return nil
	}
	var out []Annotation
	for _, a := range anns {
		if d.GetAnnotationSpecByName(a.Name) == target {
			out = append(out, a)
		}
	}
	return out
}

// NormalizeAnnotationName normalizes annotation names for comparison (case-insensitive)
func NormalizeAnnotationName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
