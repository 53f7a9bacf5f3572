package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablor21/enumgen/logger"
	"github.com/pablor21/enumgen/types"
)

func TestNewDefaultConfig(t *testing.T) {
	c := NewDefaultConfig()
	d := defaults()
	assert.Equal(t, d.LogLevel, c.LogLevel)
	assert.Equal(t, d.Workers, c.Workers)
	assert.Equal(t, d.Output, c.Output)
	assert.Equal(t, FormatterAuto, c.Formatter.Name)
	assert.Empty(t, c.Formatter.Command)
	assert.Empty(t, c.Sources)
	assert.Empty(t, c.Specs)
	assert.NoError(t, c.Validate())
	assert.Equal(t, ".", c.SourceDir())
}

func TestLoadConfigFromYAML_KeepsDefaults(t *testing.T) {
	c, err := LoadConfigFromYAML([]byte(`
logLevel: WARNING
output:
  backend: c
specs:
  - name: Color
    members: [Red, Green, Blue]
`))
	require.NoError(t, err)

	assert.Equal(t, logger.LogLevelWarn, c.LogLevel)
	assert.Equal(t, 8, c.Workers)
	assert.Equal(t, "c", c.Output.Backend)
	assert.Equal(t, "generated", c.Output.Dir)
	assert.Equal(t, []types.EnumSpec{types.NewEnumSpec("Color", "Red", "Green", "Blue")}, c.Specs)
}

func TestLoadConfigFromJSON(t *testing.T) {
	c, err := LoadConfigFromJSON([]byte(`{"workers": 2, "formatter": {"name": "none"}, "specs": [{"name": "Shape", "members": ["Circle"]}]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, "none", c.Formatter.Name)
	assert.Equal(t, "go", c.Output.Backend)
	require.Len(t, c.Specs, 1)
	assert.Equal(t, "Shape", c.Specs[0].Name)
}

func TestLoadConfig_Malformed(t *testing.T) {
	_, err := LoadConfigFromYAML([]byte("workers: [1"))
	assert.ErrorContains(t, err, "failed to parse yaml config")
	_, err = LoadConfigFromJSON([]byte("{"))
	assert.ErrorContains(t, err, "failed to parse json config")
}

func TestLoadConfigFromFile_ResolvesRelativeDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enumgen.yml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  dir: out\nsources: [./models/...]\n"), 0644))

	c, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out"), c.Output.Dir)
	assert.Equal(t, dir, c.ConfigDir)
	assert.Equal(t, dir, c.SourceDir())
	assert.Equal(t, []string{"./models/..."}, c.Sources)
}

func TestLoadConfigFromFile_AbsoluteDirUntouched(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "elsewhere")
	path := filepath.Join(dir, "enumgen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output": {"dir": "`+filepath.ToSlash(out)+`"}}`), 0644))

	c, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(out), filepath.ToSlash(c.Output.Dir))
}

func TestLoadConfigFromFile_Errors(t *testing.T) {
	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "failed to read config")

	path := filepath.Join(t.TempDir(), "enumgen.toml")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	_, err = LoadConfigFromFile(path)
	assert.ErrorContains(t, err, `unsupported config format ".toml"`)
}

func TestValidate(t *testing.T) {
	c := NewDefaultConfig()
	c.Workers = -1
	c.Output.Backend = ""
	c.Formatter.Name = "command"

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "workers must be at least 1")
	assert.ErrorContains(t, err, "output.backend is required")
	assert.ErrorContains(t, err, "formatter.command is required")
}

func TestFormatterName(t *testing.T) {
	c := NewDefaultConfig()
	assert.Equal(t, "clang-format", c.FormatterName("clang-format"))
	c.Formatter.Name = "none"
	assert.Equal(t, "none", c.FormatterName("clang-format"))
}
