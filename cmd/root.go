package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kayz/kathakar/internal/config"
	"github.com/kayz/kathakar/internal/gemini"
	"github.com/kayz/kathakar/internal/logger"
	"github.com/kayz/kathakar/internal/orchestrate"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "kathakar",
	Short: "Maharashtrian story generator and translator",
	Long: `kathakar generates Maharashtrian stories via the Gemini API and
translates them faithfully into Marathi and other languages.

Commands:
  kathakar generate    Generate a story from a JSON config or interactive prompts
  kathakar translate   Translate a story file or stdin
  kathakar web         Run the web form UI`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; the credential may come from the real environment.
		_ = godotenv.Load()
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info",
		"Log level: trace, debug, info, warn, error")
}

// loadAppConfig returns the app config, falling back to defaults when the
// file is absent or unreadable.
func loadAppConfig() *config.Config {
	cfg, err := config.Load("")
	if err != nil {
		logger.Warn("Failed to load config file, using defaults: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}

// newOrchestrator builds the Gemini client and the orchestrator around it.
// The credential check happens here, before any network attempt.
func newOrchestrator(appCfg *config.Config, model string) (*orchestrate.Orchestrator, error) {
	if model == "" {
		model = appCfg.Gemini.Model
	}
	client, err := gemini.New(gemini.Config{
		APIKey: appCfg.APIKey(),
		Model:  model,
	})
	if err != nil {
		return nil, err
	}
	return orchestrate.New(client), nil
}

func writeOutput(text, path string) error {
	if path == "" {
		return nil
	}
	return os.WriteFile(path, []byte(text+"\n"), 0644)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
