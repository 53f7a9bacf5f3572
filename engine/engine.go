// Package engine turns enumeration specs into structural artifacts.
//
// Generate is pure: it reads nothing but its argument, keeps no state between
// calls and always returns structurally identical artifacts for identical specs.
package engine

import (
	"errors"
	"fmt"

	"github.com/pablor21/enumgen/types"
)

// Generate validates spec and builds its artifact.
// Validation failures wrap types.ErrInvalidSpec and no artifact is returned.
func Generate(spec types.EnumSpec) (*types.Artifact, error) {
	if err := Validate(spec); err != nil {
		return nil, err
	}
	return types.NewArtifact(spec.Name, spec.Members), nil
}

// Validate reports every problem that would make spec ungeneratable
func Validate(spec types.EnumSpec) error {
	var errs []error

	if !IsIdentifier(spec.Name) {
		errs = append(errs, fmt.Errorf("name %q is not a valid identifier", spec.Name))
	}
	if len(spec.Members) == 0 {
		errs = append(errs, errors.New("members list is empty"))
	}

	seen := make(map[string]int, len(spec.Members))
	for i, m := range spec.Members {
		if !IsIdentifier(m) {
			errs = append(errs, fmt.Errorf("member %d %q is not a valid identifier", i, m))
			continue
		}
		if m == types.InvalidName {
			errs = append(errs, fmt.Errorf("member %d %q collides with the sentinel name", i, m))
		}
		if first, dup := seen[m]; dup {
			errs = append(errs, fmt.Errorf("member %q is declared at %d and %d", m, first, i))
			continue
		}
		seen[m] = i
	}

	if len(errs) == 0 {
		return nil
	}
	return types.NewSpecError(spec.Name, types.ErrInvalidSpec, errors.Join(errs...))
}

// IsIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
