package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/irab/internal/config"
	"github.com/abhisek/irab/internal/gateway"
	"github.com/abhisek/irab/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "irab",
	Short: "Arabic grammar analyzer in the terminal",
	Long:  "irab is a terminal client for an Arabic grammar (i'rab) analysis service: analyze sentences, practice with quizzes, dictate by voice.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides IRAB_CONFIG env var)")
	rootCmd.PersistentFlags().String("base-url", "", "Analyzer backend URL (overrides IRAB_BASE_URL env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Path to the log file (overrides IRAB_LOG_FILE env var)")
	rootCmd.Flags().Bool("lock-after-answer", false, "Reject further picks once a quiz question is answered")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig layers flags over the file and environment configuration.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if v, _ := cmd.Flags().GetString("base-url"); v != "" {
		cfg.BaseURL = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.Log.File = v
	}
	if f := cmd.Flags().Lookup("lock-after-answer"); f != nil && f.Changed {
		cfg.LockAfterAnswer, _ = cmd.Flags().GetBool("lock-after-answer")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openLogger returns the operator log, creating its directory if needed.
func openLogger(cfg config.Config) (*logger.Logger, error) {
	path := cfg.Log.File
	if path == "" {
		var err error
		if path, err = logger.DefaultLogPath(); err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
	} else if err := logger.EnsureDir(path); err != nil {
		return nil, err
	}
	return logger.New(cfg.Log.Mode, path)
}

func newClient(cfg config.Config, log *logger.Logger) gateway.Client {
	hc := gateway.NewHTTPClient(cfg.BaseURL, gateway.WithTimeout(cfg.RequestTimeout))
	return gateway.WithLogging(hc, log)
}
