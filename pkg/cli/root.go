// Package cli provides the orgwatch command line interface.
package cli

import (
	"fmt"

	"github.com/harrisonrobin/orgwatch/pkg/config"
	"github.com/harrisonrobin/orgwatch/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	cfgFile    string
	logLevel   string
	logFormat  string
	flagFiles  []string
	flagLinks  bool
	flagReport string
)

var rootCmd = &cobra.Command{
	Use:   "orgwatch",
	Short: "Scan org files for scheduled and deadline tasks",
	Long: "orgwatch scans org outline files for entries carrying SCHEDULED or\n" +
		"DEADLINE timestamps, filters them by tag, keyword and property rules,\n" +
		"and reports tasks that are missed or upcoming within configured windows.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loader := config.NewLoader()
		if cfgFile != "" {
			loader.SetConfigFile(cfgFile)
		}
		loaded, err := loader.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if logFormat != "" {
			cfg.Logging.Format = logFormat
		}
		logging.Init(cfg.Logging)

		if used := loader.ConfigFileUsed(); used != "" {
			logging.Logger.Debug().Str("config_file", used).Msg("loaded config file")
		}

		if len(flagFiles) > 0 {
			cfg.Files = flagFiles
		}
		if rootCmd.PersistentFlags().Changed("links") {
			cfg.LinkMode = flagLinks
		}
		if flagReport != "" {
			cfg.ReportName = flagReport
		}
		return nil
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/orgwatch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "override logging format (json, console)")
	rootCmd.PersistentFlags().StringSliceVar(&flagFiles, "file", nil, "org file to scan (repeatable, overrides configured files)")
	rootCmd.PersistentFlags().BoolVar(&flagLinks, "links", false, "render task names as org links to their entries")
	rootCmd.PersistentFlags().StringVar(&flagReport, "report", "", "report surface name (overrides configured report_name)")
}

// Execute runs the CLI.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

// scanFiles returns the files a command should scan, preferring
// positional arguments over configuration.
func scanFiles(args []string) ([]string, error) {
	files := cfg.Files
	if len(args) > 0 {
		files = args
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no org files to scan: pass paths as arguments or configure 'files'")
	}
	return files, nil
}
