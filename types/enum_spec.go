// Package types defines the data model shared by the engine, the emitters and the dispatcher.
package types

import (
	"fmt"
	"strings"
)

// Sentinel is the value every generated enumeration uses for "no match".
const Sentinel = -1

// InvalidName is the token ToString returns for the sentinel or any out-of-range value.
const InvalidName = "Invalid"

// EnumSpec describes one enumeration: a name and its members in declaration order
type EnumSpec struct {
	Name    string   `yaml:"name" json:"name"`
	Members []string `yaml:"members" json:"members"`
}

// NewEnumSpec is a shorthand for building a spec from literal members
func NewEnumSpec(name string, members ...string) EnumSpec {
	return EnumSpec{Name: name, Members: members}
}

// ParseEnumSpec parses the compact "Name=A,B,C" form used on the command line.
func ParseEnumSpec(s string) (EnumSpec, error) {
	name, list, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return EnumSpec{}, fmt.Errorf("invalid enum %q: expected Name=A,B,C", s)
	}
	spec := EnumSpec{Name: name}
	for m := range strings.SplitSeq(list, ",") {
		if m = strings.TrimSpace(m); m != "" {
			spec.Members = append(spec.Members, m)
		}
	}
	return spec, nil
}

func (s EnumSpec) String() string {
	return s.Name + "=" + strings.Join(s.Members, ",")
}
