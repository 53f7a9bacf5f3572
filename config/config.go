package config

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pablor21/enumgen/logger"
	"github.com/pablor21/enumgen/types"
)

//go:embed config.yml
var defaultConfigFile embed.FS

// FormatterAuto picks the formatter that suits the selected backend
const FormatterAuto = "auto"

type Config struct {
	LogLevel  logger.LogLevel  `json:"logLevel" yaml:"logLevel"`
	Workers   int              `json:"workers" yaml:"workers"`
	Output    OutputConfig     `json:"output" yaml:"output"`
	Formatter FormatterConfig  `json:"formatter" yaml:"formatter"`
	Sources   []string         `json:"sources" yaml:"sources"`
	Specs     []types.EnumSpec `json:"specs" yaml:"specs"`

	// ConfigDir is the directory of the loaded config file, empty for
	// in-memory configs. Sources are loaded relative to it.
	ConfigDir string `json:"-" yaml:"-"`
}

type OutputConfig struct {
	Dir     string `json:"dir" yaml:"dir"`
	Backend string `json:"backend" yaml:"backend"`
	Package string `json:"package" yaml:"package"`
	Header  string `json:"header" yaml:"header"`
}

type FormatterConfig struct {
	// Name is one of auto, goimports, clang-format, command or none
	Name string `json:"name" yaml:"name"`
	// Command is the program and arguments for the "command" formatter,
	// or extra arguments for clang-format. {file} is replaced with the destination name.
	Command []string `json:"command" yaml:"command"`
}

func NewDefaultConfig() *Config {
	// parse default config from embedded file
	config, err := LoadConfigFromFS(defaultConfigFile, "config.yml")
	if err != nil {
		panic("failed to load default config: " + err.Error())
	}
	return config
}

func LoadConfigFromFS(fsys fs.FS, path string) (*Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return LoadConfigFromYAML(data)
}

// LoadConfigFromYAML parses data over the defaults, so omitted keys keep their default value
func LoadConfigFromYAML(data []byte) (*Config, error) {
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse yaml config: %w", err)
	}
	config.Normalize()
	return config, nil
}

func LoadConfigFromJSON(data []byte) (*Config, error) {
	config := defaults()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse json config: %w", err)
	}
	config.Normalize()
	return config, nil
}

// LoadConfigFromFile loads a .yml, .yaml or .json file. A relative output
// directory is resolved against the directory holding the file.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config *Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		config, err = LoadConfigFromYAML(data)
	case ".json":
		config, err = LoadConfigFromJSON(data)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	config.ConfigDir = dir
	if !filepath.IsAbs(config.Output.Dir) {
		config.Output.Dir = filepath.Join(dir, config.Output.Dir)
	}
	return config, nil
}

// defaults is the struct form of the embedded config.yml
func defaults() *Config {
	return &Config{
		LogLevel:  logger.LogLevelInfo,
		Workers:   8,
		Output:    OutputConfig{Dir: "generated", Backend: "go", Package: "enums"},
		Formatter: FormatterConfig{Name: FormatterAuto},
	}
}

// Normalize fills empty fields with their defaults
func (c *Config) Normalize() {
	d := defaults()
	c.LogLevel = logger.ParseLogLevel(string(c.LogLevel))
	if c.Workers == 0 {
		c.Workers = d.Workers
	}
	if c.Output.Dir == "" {
		c.Output.Dir = d.Output.Dir
	}
	if c.Output.Backend == "" {
		c.Output.Backend = d.Output.Backend
	}
	if c.Formatter.Name == "" {
		c.Formatter.Name = d.Formatter.Name
	}
}

// Validate reports configuration errors that would stop a run before it starts
func (c *Config) Validate() error {
	var errs []error
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if c.Output.Backend == "" {
		errs = append(errs, errors.New("output.backend is required"))
	}
	if c.Formatter.Name == "command" && len(c.Formatter.Command) == 0 {
		errs = append(errs, errors.New("formatter.command is required by the command formatter"))
	}
	return errors.Join(errs...)
}

// FormatterName resolves "auto" to the formatter preferred by the backend
func (c *Config) FormatterName(backendDefault string) string {
	if c.Formatter.Name == FormatterAuto {
		return backendDefault
	}
	return c.Formatter.Name
}

// SourceDir is the directory source patterns are loaded from
func (c *Config) SourceDir() string {
	if c.ConfigDir != "" {
		return c.ConfigDir
	}
	return "."
}
