// cmd/cmakedoc/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/julianshen/cmakedoc/internal/config"
	"github.com/julianshen/cmakedoc/internal/runner"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	configPath string
	outputFlag string
	recursive  bool
	jobsFlag   int
)

func versionString() string {
	return fmt.Sprintf("cmakedoc %s (commit: %s, built: %s)", version, commit, date)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the root command with its flags and subcommands.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cmakedoc file [file ...]",
		Short: "Generate Sphinx RST documentation from CMake files",
		Long: `cmakedoc extracts documentation from #[[[ ... #]] block comments in
CMake files and generates Sphinx-compatible RST. Directory arguments are
searched for *.cmake files (case-insensitive); without --output the
generated RST is printed to standard output.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if cfg.Output.Dir != "" {
				abs, err := filepath.Abs(cfg.Output.Dir)
				if err != nil {
					return fmt.Errorf("resolving output directory: %w", err)
				}
				cfg.Output.Dir = abs
				fmt.Fprintf(os.Stderr, "Writing RST files to %s\n", abs)
			}

			return runner.Run(args, runner.Config{
				OutputDir: cfg.Output.Dir,
				Recursive: cfg.Discovery.Recursive,
				Jobs:      cfg.Discovery.Jobs,
				SkipDirs:  cfg.Discovery.SkipDirs,
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file (default .cmakedoc.toml)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "directory to write generated RST to (default: stdout)")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into subdirectories of directory arguments")
	rootCmd.Flags().IntVar(&jobsFlag, "jobs", 0, "max files processed in parallel")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(versionString())
		},
	}
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// loadConfig resolves the config path, loads the config, and applies any
// flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath := configPath
	if cfgPath == "" {
		cfgPath = config.DefaultConfigName
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("output") {
		cfg.Output.Dir = outputFlag
	}
	if cmd.Flags().Changed("recursive") {
		cfg.Discovery.Recursive = recursive
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Discovery.Jobs = jobsFlag
	}

	return cfg, nil
}
