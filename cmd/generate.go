package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kayz/kathakar/internal/logger"
	"github.com/kayz/kathakar/internal/orchestrate"
	"github.com/kayz/kathakar/internal/story"
)

var (
	generateConfigPath  string
	generateModel       string
	generateTemperature float64
	generateOutput      string
	generateDryRun      bool
	generateMode        string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a story from a JSON config or interactive prompts",
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "",
		"Path to JSON file containing story parameters")
	generateCmd.Flags().StringVar(&generateModel, "model", "",
		"Gemini model name (default from config file)")
	generateCmd.Flags().Float64Var(&generateTemperature, "temperature", story.DefaultTemperature,
		"Sampling temperature")
	generateCmd.Flags().StringVar(&generateOutput, "output", "",
		"File path to save the generated story")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false,
		"Print the prompt without calling Gemini")
	generateCmd.Flags().StringVar(&generateMode, "mode", "auto",
		"Generation mode: auto, single, or chaptered")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadStoryConfig(generateConfigPath)
	if err != nil {
		return fmt.Errorf("loading story config: %w", err)
	}

	mode, err := orchestrate.ParseMode(generateMode)
	if err != nil {
		return err
	}

	if generateDryRun {
		return printPrompt(cfg, mode)
	}

	appCfg := loadAppConfig()
	runner, err := newOrchestrator(appCfg, generateModel)
	if err != nil {
		return err
	}

	text, err := runner.GenerateStory(context.Background(), cfg, orchestrate.StoryOptions{
		Mode:        mode,
		Temperature: generateTemperature,
		OnChapter: func(number int, chapter string) {
			logger.Info("Chapter %d finished (%d chars)", number, len(chapter))
		},
	})
	if err != nil {
		return fmt.Errorf("failed to generate story: %w", err)
	}

	if err := writeOutput(text, generateOutput); err != nil {
		return fmt.Errorf("writing %s: %w", generateOutput, err)
	}
	fmt.Println(text)
	return nil
}

func printPrompt(cfg story.Config, mode orchestrate.Mode) error {
	if mode == orchestrate.ModeSingle || (mode == orchestrate.ModeAuto && !orchestrate.ShouldChapter(cfg)) {
		fmt.Println(story.BuildStoryPrompt(cfg))
		return nil
	}
	fmt.Println(story.BuildChapterPrompt(cfg, 1, "", story.ChapterTargetWords(cfg)))
	return nil
}

// loadStoryConfig reads the story document from path, or collects it
// interactively when no path is given.
func loadStoryConfig(path string) (story.Config, error) {
	if path == "" {
		return promptForConfig(os.Stdin, os.Stdout)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return story.Config{}, err
	}
	cfg, err := story.FromJSON(data)
	if err != nil {
		return story.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return story.Config{}, err
	}
	return cfg, nil
}

// promptForConfig collects the story parameters over stdin, with the same
// defaults the web form offers.
func promptForConfig(in *os.File, out *os.File) (story.Config, error) {
	reader := bufio.NewReader(in)

	ask := func(prompt, fallback string) string {
		if fallback != "" {
			fmt.Fprintf(out, "%s [%s]: ", prompt, fallback)
		} else {
			fmt.Fprintf(out, "%s: ", prompt)
		}
		line, _ := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
		return fallback
	}

	askInt := func(prompt string, fallback int) int {
		raw := ask(prompt, strconv.Itoa(fallback))
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
		fmt.Fprintln(out, "Not a positive integer, using default.")
		return fallback
	}

	cfg := story.Config{
		Description:           ask("Briefly describe the core story idea", ""),
		Characters:            story.SplitList(ask("List the main characters (comma separated)", "")),
		Genre:                 ask("What genre should the story follow?", story.GenreOptions[0]),
		WritingStyle:          ask("Preferred writing style", story.StyleOptions[0]),
		LiteratureInspiration: ask("Literature inspiration", story.InspirationOptions[0]),
		WordLength:            askInt("Approximate total word length", story.DefaultWordLength),
		Chapters:              askInt("How many chapters?", story.DefaultChapters),
		PlotTwists:            story.SplitList(ask("List desired plot twists (comma separated)", "")),
		EndingType:            ask("What kind of ending?", story.EndingOptions[0]),
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return story.Config{}, err
	}
	return cfg, nil
}
