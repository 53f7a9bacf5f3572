package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pablor21/enumgen"
	"github.com/pablor21/enumgen/config"
	"github.com/pablor21/enumgen/dispatcher"
	"github.com/pablor21/enumgen/logger"
	"github.com/pablor21/enumgen/types"
	"github.com/pablor21/enumgen/utils"
)

type runFlags struct {
	configPath string
	outputDir  string
	backend    string
	pkg        string
	workers    int
	formatter  string
	dryRun     bool
	logLevel   string
}

var generateFlags, checkFlags runFlags

// defaultConfigFiles are looked up in the working directory when -c is not given
var defaultConfigFiles = []string{"enumgen.yml", "enumgen.yaml", "enumgen.json"}

var generateCmd = &cobra.Command{
	Use:   "generate [Name=A,B,C ...]",
	Short: "Generate enumeration files",
	Long: `Generate one file per enumeration spec.

Each spec is generated independently: a failing spec is reported and the
others are still written. The exit status is 1 if any spec failed.

Example:
  enumgen generate -c enumgen.yml
  enumgen generate -o include -b c NumberType=Signed,Unsigned,Float`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := enumgen.ModeWrite
		if generateFlags.dryRun {
			mode = enumgen.ModeDryRun
		}
		return run(cmd, args, &generateFlags, mode)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [Name=A,B,C ...]",
	Short: "Verify generated files are up to date",
	Long: `Render every spec and compare it with the file on disk without writing.
Out-of-date files are reported with a unified diff.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, &checkFlags, enumgen.ModeCheck)
	},
}

func init() {
	registerFlags(generateCmd.Flags(), &generateFlags)
	generateCmd.Flags().BoolVar(&generateFlags.dryRun, "dry-run", false, "Render without writing any file")
	registerFlags(checkCmd.Flags(), &checkFlags)

	rootCmd.AddCommand(generateCmd, checkCmd)
}

func registerFlags(fs *pflag.FlagSet, f *runFlags) {
	fs.StringVarP(&f.configPath, "config", "c", "", "Config file (.yml, .yaml or .json), defaults to ./enumgen.yml when present")
	fs.StringVarP(&f.outputDir, "output", "o", "", "Output directory")
	fs.StringVarP(&f.backend, "backend", "b", "", "Backend: go or c")
	fs.StringVarP(&f.pkg, "package", "p", "", "Package name for the go backend")
	fs.IntVarP(&f.workers, "workers", "w", 0, "Maximum concurrent tasks")
	fs.StringVar(&f.formatter, "formatter", "", "Formatter: auto, goimports, clang-format, command or none")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error or none")
}

func run(cmd *cobra.Command, args []string, f *runFlags, mode enumgen.Mode) error {
	cfg, err := loadConfig(f, args)
	if err != nil {
		return err
	}

	logger.SetupLogger(cfg.LogLevel)
	report, err := enumgen.ProcessWithConfig(cmd.Context(), cfg, enumgen.WithMode(mode))
	if err != nil {
		return err
	}

	printReport(cmd, report, mode)
	if !report.OK() {
		return fmt.Errorf("%d of %d enums failed", len(report.Failed), len(report.Failed)+len(report.Succeeded))
	}
	return nil
}

// loadConfig reads the config file, if any, and applies flags and positional specs over it
func loadConfig(f *runFlags, args []string) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	path := f.configPath
	if path == "" {
		for _, name := range defaultConfigFiles {
			if utils.FileExists(name) {
				path = name
				break
			}
		}
	}
	if path != "" {
		loaded, err := config.LoadConfigFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if f.outputDir != "" {
		cfg.Output.Dir = f.outputDir
	}
	if f.backend != "" {
		cfg.Output.Backend = f.backend
	}
	if f.pkg != "" {
		cfg.Output.Package = f.pkg
	}
	if f.workers != 0 {
		cfg.Workers = f.workers
	}
	if f.formatter != "" {
		cfg.Formatter.Name = f.formatter
	}
	if f.logLevel != "" {
		cfg.LogLevel = logger.ParseLogLevel(f.logLevel)
	}

	for _, arg := range args {
		spec, err := types.ParseEnumSpec(arg)
		if err != nil {
			return nil, err
		}
		cfg.Specs = append(cfg.Specs, spec)
	}
	if len(cfg.Specs) == 0 && len(cfg.Sources) == 0 {
		return nil, errors.New("no enums to generate: pass Name=A,B,C arguments or a config with specs or sources")
	}
	return cfg, nil
}

func printReport(cmd *cobra.Command, report *types.Report, mode enumgen.Mode) {
	out := cmd.OutOrStdout()
	for _, o := range report.Succeeded {
		switch {
		case mode == enumgen.ModeDryRun:
			fmt.Fprintf(out, "--- %s\n%s", o.Path, o.Content)
		case mode == enumgen.ModeCheck:
			fmt.Fprintf(out, "ok       %s\n", o.Path)
		case o.Changed:
			fmt.Fprintf(out, "wrote    %s\n", o.Path)
		default:
			fmt.Fprintf(out, "unchanged %s\n", o.Path)
		}
	}

	errOut := cmd.ErrOrStderr()
	for _, f := range report.Failed {
		var drift *dispatcher.DriftError
		if errors.As(f.Err, &drift) {
			fmt.Fprintf(errOut, "stale    %s\n", drift.Path)
			if drift.Diff != "" {
				fmt.Fprint(errOut, drift.Diff)
			}
			continue
		}
		fmt.Fprintf(errOut, "failed   %v\n", f.Err)
	}
}
