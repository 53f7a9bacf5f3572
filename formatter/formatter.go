// Package formatter applies an optional style pass to rendered source.
package formatter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/tools/imports"
)

// Formatter rewrites rendered source into its canonical style
type Formatter interface {
	Name() string
	Format(ctx context.Context, filename string, src []byte) ([]byte, error)
}

// New builds a formatter by name. args are only used by "command" and "clang-format".
func New(name string, args []string) (Formatter, error) {
	switch name {
	case "", "none":
		return Noop{}, nil
	case "goimports", "gofmt":
		return NewGoImports(), nil
	case "clang-format":
		return NewCommand("clang-format", append([]string{"--assume-filename={file}"}, args...)...), nil
	case "command":
		if len(args) == 0 {
			return nil, errors.New("command formatter needs at least the program name")
		}
		return NewCommand(args[0], args[1:]...), nil
	default:
		return nil, fmt.Errorf("unknown formatter %q", name)
	}
}

// Noop returns its input unchanged
type Noop struct{}

func (Noop) Name() string { return "none" }

func (Noop) Format(_ context.Context, _ string, src []byte) ([]byte, error) {
	return src, nil
}

// GoImports formats Go source with golang.org/x/tools/imports
type GoImports struct {
	opts *imports.Options
}

func NewGoImports() *GoImports {
	return &GoImports{opts: &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	}}
}

func (g *GoImports) Name() string { return "goimports" }

func (g *GoImports) Format(_ context.Context, filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, g.opts)
	if err != nil {
		return nil, fmt.Errorf("goimports %s: %w", filename, err)
	}
	return out, nil
}

// Command pipes source through an external program and reads the result from stdout.
// The placeholder {file} in args is replaced by the destination file name.
type Command struct {
	program string
	args    []string
}

func NewCommand(program string, args ...string) *Command {
	return &Command{program: program, args: args}
}

func (c *Command) Name() string { return c.program }

func (c *Command) Format(ctx context.Context, filename string, src []byte) ([]byte, error) {
	args := make([]string, len(c.args))
	for i, a := range c.args {
		args[i] = strings.ReplaceAll(a, "{file}", filename)
	}

	cmd := exec.CommandContext(ctx, c.program, args...)
	cmd.Stdin = bytes.NewReader(src)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s %s: %w: %s", c.program, filename, err, msg)
		}
		return nil, fmt.Errorf("%s %s: %w", c.program, filename, err)
	}
	return stdout.Bytes(), nil
}
