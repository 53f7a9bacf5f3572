package types_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablor21/enumgen/engine"
	"github.com/pablor21/enumgen/types"
)

func color(t *testing.T) *types.Artifact {
	t.Helper()
	a, err := engine.Generate(types.NewEnumSpec("Color", "Red", "Green", "Blue"))
	require.NoError(t, err)
	return a
}

func TestFromIndex_Bounds(t *testing.T) {
	a := color(t)

	assert.Equal(t, 0, a.FromIndex(0))
	assert.Equal(t, 1, a.FromIndex(1))
	assert.Equal(t, 2, a.FromIndex(2))
	assert.Equal(t, types.Sentinel, a.FromIndex(3))
	assert.Equal(t, types.Sentinel, a.FromIndex(-1))
	assert.Equal(t, types.Sentinel, a.FromIndex(1<<30))
}

func TestFromString_ExactMatchOnly(t *testing.T) {
	a := color(t)

	tests := []struct {
		in     string
		length int
		want   int
	}{
		{"Red", 3, 0},
		{"Green", 5, 1},
		{"Blue", 4, 2},
		{"Re", 2, types.Sentinel},
		{"Reddish", 7, types.Sentinel},
		{"red", 3, types.Sentinel},
		{"", 0, types.Sentinel},
		// only the first length bytes take part in the comparison
		{"Redundant", 3, 0},
		// length past the buffer never reads out of bounds
		{"Red", 4, types.Sentinel},
		{"Red", -1, types.Sentinel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, a.FromString([]byte(tt.in), tt.length), "%q/%d", tt.in, tt.length)
	}
}

func TestLookups_LengthShortCircuit(t *testing.T) {
	a := color(t)
	long := []byte(strings.Repeat("G", a.LongestMemberNameLength()+1))

	assert.Equal(t, types.Sentinel, a.FromString(long, len(long)))
	assert.Equal(t, types.Sentinel, a.FromCaseInsensitiveString(long, len(long)))
}

func TestFromCaseInsensitiveString(t *testing.T) {
	a := color(t)

	assert.Equal(t, a.FromString([]byte("Green"), 5), a.FromCaseInsensitiveString([]byte("GrEeN"), 5))
	assert.Equal(t, 1, a.FromCaseInsensitiveString([]byte("GREEN"), 5))
	assert.Equal(t, 0, a.FromCaseInsensitiveString([]byte("red"), 3))
	assert.Equal(t, types.Sentinel, a.FromCaseInsensitiveString([]byte("gree"), 4))
	assert.Equal(t, types.Sentinel, a.FromCaseInsensitiveString([]byte("greens"), 6))
	assert.Equal(t, "green", a.LowerMember(1))
}

func TestFromCaseInsensitiveString_DoesNotMutateInput(t *testing.T) {
	a := color(t)
	in := []byte("BLUE")
	assert.Equal(t, 2, a.FromCaseInsensitiveString(in, 4))
	assert.Equal(t, "BLUE", string(in))
}

func TestToString(t *testing.T) {
	a := color(t)
	assert.Equal(t, "Red", a.ToString(0))
	assert.Equal(t, "Blue", a.ToString(2))
	assert.Equal(t, types.InvalidName, a.ToString(types.Sentinel))
	assert.Equal(t, types.InvalidName, a.ToString(3))
}

func TestMembersReturnsCopy(t *testing.T) {
	a := color(t)
	m := a.Members()
	m[0] = "Purple"
	assert.Equal(t, "Red", a.Member(0))
}

func TestParseEnumSpec(t *testing.T) {
	s, err := types.ParseEnumSpec("Color=Red, Green,Blue,")
	require.NoError(t, err)
	assert.Equal(t, types.NewEnumSpec("Color", "Red", "Green", "Blue"), s)
	assert.Equal(t, "Color=Red,Green,Blue", s.String())

	s, err = types.ParseEnumSpec("Empty=")
	require.NoError(t, err)
	assert.Empty(t, s.Members)

	_, err = types.ParseEnumSpec("NoEquals")
	assert.Error(t, err)
	_, err = types.ParseEnumSpec("=A")
	assert.Error(t, err)
}
