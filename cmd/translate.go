package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kayz/kathakar/internal/logger"
	"github.com/kayz/kathakar/internal/orchestrate"
)

var (
	translateFile        string
	translateLanguage    string
	translateModel       string
	translateTemperature float64
	translateMaxChars    int
	translateOutput      string
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a story file or stdin",
	Long: `Translate a story into the target language without altering its
structure. Long input is split into chunks at paragraph boundaries and each
chunk is translated in order.`,
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().StringVar(&translateFile, "file", "",
		"Path to the story to translate (default: stdin)")
	translateCmd.Flags().StringVar(&translateLanguage, "language", "",
		"Target language (default from config file)")
	translateCmd.Flags().StringVar(&translateModel, "model", "",
		"Gemini model name (default from config file)")
	translateCmd.Flags().Float64Var(&translateTemperature, "temperature", 0,
		"Sampling temperature (default from config file)")
	translateCmd.Flags().IntVar(&translateMaxChars, "max-chars", 0,
		"Maximum characters per translation chunk (default from config file)")
	translateCmd.Flags().StringVar(&translateOutput, "output", "",
		"File path to save the translation")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	text, err := readSource(translateFile)
	if err != nil {
		return fmt.Errorf("reading source text: %w", err)
	}

	appCfg := loadAppConfig()
	language := translateLanguage
	if language == "" {
		language = appCfg.Translation.Language
	}
	temperature := translateTemperature
	if temperature <= 0 {
		temperature = appCfg.Translation.Temperature
	}
	maxChars := translateMaxChars
	if maxChars <= 0 {
		maxChars = appCfg.Translation.MaxChars
	}

	runner, err := newOrchestrator(appCfg, translateModel)
	if err != nil {
		return err
	}

	translated, err := runner.Translate(context.Background(), text, language, orchestrate.TranslateOptions{
		Temperature: temperature,
		MaxChars:    maxChars,
		OnChunk: func(number, total int) {
			logger.Info("Translated chunk %d/%d", number, total)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to translate story: %w", err)
	}

	if err := writeOutput(translated, translateOutput); err != nil {
		return fmt.Errorf("writing %s: %w", translateOutput, err)
	}
	fmt.Println(translated)
	return nil
}

func readSource(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
