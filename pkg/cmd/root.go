package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/siyuan-infoblox/lensort/pkg/config"
	"github.com/siyuan-infoblox/lensort/pkg/errors"
	"github.com/siyuan-infoblox/lensort/pkg/linter"
	"github.com/siyuan-infoblox/lensort/pkg/rules"
	"github.com/siyuan-infoblox/lensort/pkg/version"
)

const (
	UseDescription   = "lensort [flags] PATH..."
	ShortDescription = "lensort - sort JavaScript and TypeScript constructs by length"
	LongDescription  = `lensort is a command-line linter that keeps sibling constructs ordered
from shorter to longer.

It checks:
1. Import statements, grouped into module, absolute and relative imports,
   with react and react-native always first
2. Named import specifiers
3. JSX attributes
4. Object destructuring properties

Multi-line constructs sort after single-line ones. Each PATH can be a source
file or a directory; directories are searched recursively for .js, .jsx,
.ts, .tsx, .mjs and .cjs files.`
)

var (
	fix         bool
	showDiff    bool
	configPath  string
	projectRoot string
	jobs        int
	ruleNames   []string
	noColor     bool
	verbose     bool
	showVersion bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:               UseDescription,
	Short:             ShortDescription,
	Long:              LongDescription,
	Args:              validateArgs,
	PersistentPreRunE: initLogger,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&fix, "fix", false, "Write fixes back to the files")
	rootCmd.PersistentFlags().BoolVar(&showDiff, "diff", false, "Print a unified diff of the fixes; files are only written with --fix")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: $"+config.EnvConfigPath+" or lensort.yml in the working directory)")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "root", "", "Project root holding the src directory (default: nearest directory with package.json)")
	rootCmd.PersistentFlags().IntVar(&jobs, "jobs", 0, "Number of files processed in parallel (default: from config)")
	rootCmd.PersistentFlags().StringSliceVar(&ruleNames, "rule", []string{}, fmt.Sprintf("Run only the given rules (one of %v)", rules.Names()))
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need path arguments
	if showVersion {
		return nil
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

// initLogger builds the zap logger. Only warnings are shown unless --verbose.
func initLogger(cmd *cobra.Command, args []string) error {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = cfg.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToInitLogger, err)
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		if verbose {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get())
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), errors.InfoMsgVersionBanner+"\n", version.Version)
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}

	g := linter.New(linter.LinterConfig{
		Root:    projectRoot,
		Fix:     fix,
		Diff:    showDiff,
		Rules:   ruleNames,
		Jobs:    jobs,
		NoColor: noColor,
		Config:  cfg,
		Logger:  logger,
		Out:     cmd.OutOrStdout(),
	})
	return g.ProcessPaths(cmd.Context(), args)
}

// Execute runs the root command. A module version from the build info
// replaces the ldflags default.
func Execute(buildVersion string) error {
	if buildVersion != "" && buildVersion != "(devel)" {
		version.Version = buildVersion
	}
	return rootCmd.Execute()
}
