package formatter

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantName string
		wantErr  bool
	}{
		{name: "", wantName: "none"},
		{name: "none", wantName: "none"},
		{name: "goimports", wantName: "goimports"},
		{name: "gofmt", wantName: "goimports"},
		{name: "clang-format", wantName: "clang-format"},
		{name: "command", args: []string{"cat"}, wantName: "cat"},
		{name: "command", wantErr: true},
		{name: "prettier", wantErr: true},
	}
	for _, tt := range tests {
		f, err := New(tt.name, tt.args)
		if tt.wantErr {
			assert.Error(t, err, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.wantName, f.Name())
	}
}

func TestNoop(t *testing.T) {
	src := []byte("anything")
	out, err := Noop{}.Format(context.Background(), "x.h", src)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestGoImports_Formats(t *testing.T) {
	src := []byte("package enums\nconst (\nA=1\nLonger   =2\n)\n")
	out, err := NewGoImports().Format(context.Background(), "a_enum.go", src)
	require.NoError(t, err)
	assert.Contains(t, string(out), "\tLonger = 2\n")
	assert.NotEqual(t, string(src), string(out))
}

func TestGoImports_RejectsInvalidSource(t *testing.T) {
	_, err := NewGoImports().Format(context.Background(), "bad.go", []byte("package enums\nfunc {"))
	assert.ErrorContains(t, err, "bad.go")
}

func TestCommand_PipesThroughProgram(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}
	out, err := NewCommand("cat").Format(context.Background(), "Color.h", []byte("#pragma once\n"))
	require.NoError(t, err)
	assert.Equal(t, "#pragma once\n", string(out))
}

func TestCommand_ReplacesFilePlaceholder(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	out, err := NewCommand("echo", "-n", "{file}").Format(context.Background(), "Color.h", nil)
	require.NoError(t, err)
	assert.Equal(t, "Color.h", string(out))
}

func TestCommand_Failure(t *testing.T) {
	_, err := NewCommand("enumgen-no-such-formatter").Format(context.Background(), "Color.h", []byte("x"))
	assert.ErrorContains(t, err, "enumgen-no-such-formatter")
}
