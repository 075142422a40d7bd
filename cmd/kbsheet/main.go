package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/kbsheet/internal/common"
	"github.com/ternarybob/kbsheet/internal/models"
)

// Exit codes
const (
	exitOK               = 0
	exitUsage            = 1
	exitLoadFailed       = 2
	exitValidationFailed = 3
	exitWriteFailed      = 4
	exitConvertFailed    = 5
)

var (
	// Command-line flags
	configFiles []string
	logLevel    string

	// Global state
	config *common.Config
	logger arbor.ILogger
)

var rootCmd = &cobra.Command{
	Use:           "kbsheet",
	Short:         "Convert chatbot knowledge-base workbooks to JSON",
	Long:          `Reads a workbook with question/answer, synonym and FAQ sheets and writes the knowledge-base and FAQ JSON documents used by the chatbot.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load config (defaults -> files -> env)
		// 2. Apply CLI overrides
		// 3. Initialize logger with a per-run correlation id
		if len(configFiles) == 0 {
			configFiles = common.DiscoverConfigFiles()
		}

		var err error
		config, err = common.LoadFromFiles(configFiles...)
		if err != nil {
			return err
		}
		common.ApplyFlagOverrides(config, logLevel)

		logger = common.SetupLogger(config).WithCorrelationId(common.NewRunID())
		logger.Debug().
			Strs("config_files", configFiles).
			Str("log_level", config.Logging.Level).
			Msg("Configuration loaded")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringArrayVarP(&configFiles, "config", "c", nil, "Configuration file path (can be specified multiple times, later files override earlier ones)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error().Err(err).Msg("Command failed")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
	os.Exit(exitOK)
}

// exitCode maps an error to a distinct process exit status per failure class
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, models.ErrLoadWorkbook):
		return exitLoadFailed
	case errors.Is(err, models.ErrValidationFailed):
		return exitValidationFailed
	case errors.Is(err, models.ErrWriteOutput):
		return exitWriteFailed
	case errors.Is(err, models.ErrNotInteger), errors.Is(err, models.ErrNoSheets):
		return exitConvertFailed
	default:
		return exitUsage
	}
}
