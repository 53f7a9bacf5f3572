package types

// Artifact is the structural result of generating one enumeration.
// It is built once by the engine and never modified afterwards.
type Artifact struct {
	name     string
	members  []string
	lower    []string
	ordinals map[string]int
	longest  int
}

// NewArtifact builds an artifact from already validated members.
// Callers outside the engine should use engine.Generate instead.
func NewArtifact(name string, members []string) *Artifact {
	a := &Artifact{
		name:     name,
		members:  make([]string, len(members)),
		lower:    make([]string, len(members)),
		ordinals: make(map[string]int, len(members)),
	}
	copy(a.members, members)
	for i, m := range a.members {
		a.lower[i] = string(lowerASCII(nil, []byte(m)))
		a.ordinals[m] = i
		a.longest = max(a.longest, len(m))
	}
	return a
}

// Name returns the enumeration name
func (a *Artifact) Name() string { return a.name }

// Members returns a copy of the members in declaration order
func (a *Artifact) Members() []string {
	out := make([]string, len(a.members))
	copy(out, a.members)
	return out
}

// Count returns the number of members
func (a *Artifact) Count() int { return len(a.members) }

// Member returns the member at ordinal i. It panics when i is out of range, like a slice index.
func (a *Artifact) Member(i int) string { return a.members[i] }

// LowerMember returns the precomputed ASCII lower-case form of member i.
func (a *Artifact) LowerMember(i int) string { return a.lower[i] }

// OrdinalOf returns the ordinal of member
func (a *Artifact) OrdinalOf(member string) (int, bool) {
	i, ok := a.ordinals[member]
	return i, ok
}

// Sentinel returns the "no match" value
func (a *Artifact) Sentinel() int { return Sentinel }

// LongestMemberNameLength returns the byte length of the longest member
func (a *Artifact) LongestMemberNameLength() int { return a.longest }

// FromIndex returns i when it is a valid ordinal and the sentinel otherwise.
func (a *Artifact) FromIndex(i int) int {
	if i < 0 || i >= len(a.members) {
		return Sentinel
	}
	return i
}

// FromString returns the ordinal of the member equal to b[:length].
// The match is exact and case-sensitive over the full length.
func (a *Artifact) FromString(b []byte, length int) int {
	if length > a.longest || length < 0 || length > len(b) {
		return Sentinel
	}
	in := b[:length]
	for i, m := range a.members {
		if len(m) == length && string(in) == m {
			return i
		}
	}
	return Sentinel
}

// FromCaseInsensitiveString is FromString with ASCII case folded on both sides.
func (a *Artifact) FromCaseInsensitiveString(b []byte, length int) int {
	if length > a.longest || length < 0 || length > len(b) {
		return Sentinel
	}
	var buf [64]byte
	in := lowerASCII(buf[:0], b[:length])
	for i, m := range a.lower {
		if len(m) == length && string(in) == m {
			return i
		}
	}
	return Sentinel
}

// ToString returns the member name for v, or InvalidName when v is not a valid ordinal.
func (a *Artifact) ToString(v int) string {
	if v < 0 || v >= len(a.members) {
		return InvalidName
	}
	return a.members[v]
}

// Equal reports whether two artifacts are structurally identical
func (a *Artifact) Equal(b *Artifact) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.name != b.name || a.longest != b.longest || len(a.members) != len(b.members) {
		return false
	}
	for i := range a.members {
		if a.members[i] != b.members[i] || a.lower[i] != b.lower[i] {
			return false
		}
	}
	return true
}

func lowerASCII(dst, src []byte) []byte {
	for _, c := range src {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		dst = append(dst, c)
	}
	return dst
}
