// Package orchestrate sequences model calls into one story or one
// translation: it picks single-shot versus chaptered generation, threads
// prior chapters into each prompt, and applies the one documented fallback.
package orchestrate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kayz/kathakar/internal/chunker"
	"github.com/kayz/kathakar/internal/gemini"
	"github.com/kayz/kathakar/internal/logger"
	"github.com/kayz/kathakar/internal/story"
)

// Client is the single call primitive shared by generation and translation.
type Client interface {
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)
}

// Mode selects how a story is generated.
type Mode string

const (
	ModeAuto      Mode = "auto"
	ModeSingle    Mode = "single"
	ModeChaptered Mode = "chaptered"
)

// ParseMode validates a mode flag value.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAuto, "":
		return ModeAuto, nil
	case ModeSingle:
		return ModeSingle, nil
	case ModeChaptered:
		return ModeChaptered, nil
	default:
		return "", fmt.Errorf("mode must be auto, single, or chaptered, got %q", s)
	}
}

const (
	// Auto mode switches to chaptered requests once a story is long enough
	// that a single response would risk the output token ceiling.
	chapterWordThreshold  = 1400
	chapterCountThreshold = 4

	// maxContextChars bounds the trailing window of already generated text
	// carried into each chapter prompt.
	maxContextChars = 4000
)

// ShouldChapter reports whether auto mode generates chapter by chapter.
func ShouldChapter(cfg story.Config) bool {
	return cfg.WordLength >= chapterWordThreshold || cfg.Chapters >= chapterCountThreshold
}

// StoryOptions tune one generation run.
type StoryOptions struct {
	Mode        Mode
	Temperature float64
	// OnChapter receives each chapter as it completes, so callers can show
	// progress and keep partial output when a later chapter fails.
	OnChapter func(number int, text string)
}

// TranslateOptions tune one translation run.
type TranslateOptions struct {
	Temperature float64
	MaxChars    int
	OnChunk     func(number, total int)
}

// Orchestrator owns no state across runs; each run builds its own
// accumulation buffer.
type Orchestrator struct {
	client Client
}

func New(client Client) *Orchestrator {
	return &Orchestrator{client: client}
}

// GenerateStory produces the full story text for cfg. Chapters are joined
// with a blank line, each headed "Chapter N: <title>" by prompt contract.
func (o *Orchestrator) GenerateStory(ctx context.Context, cfg story.Config, opts StoryOptions) (string, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	mode := opts.Mode
	if mode == "" || mode == ModeAuto {
		mode = ModeSingle
		if ShouldChapter(cfg) {
			mode = ModeChaptered
		}
	}

	runID := uuid.NewString()
	logger.Info("[orchestrate] run %s: generating story, mode=%s words=%d chapters=%d", runID, mode, cfg.WordLength, cfg.Chapters)

	if mode == ModeChaptered {
		return o.generateChaptered(ctx, runID, cfg, opts)
	}

	text, err := o.client.Generate(ctx, story.BuildStoryPrompt(cfg), opts.Temperature)
	if err == nil {
		text = strings.TrimSpace(text)
		if opts.OnChapter != nil {
			opts.OnChapter(1, text)
		}
		return text, nil
	}
	if !fallsBackToChapters(err) {
		return "", err
	}

	// The one automatic fallback: a truncated or unparseable single-shot
	// response is retried once as a chaptered run with the same config.
	logger.Warn("[orchestrate] run %s: single-shot failed (%v), falling back to chaptered generation", runID, err)
	text, fallbackErr := o.generateChaptered(ctx, runID, cfg, opts)
	if fallbackErr != nil {
		return "", errors.Join(fallbackErr, err)
	}
	return text, nil
}

func (o *Orchestrator) generateChaptered(ctx context.Context, runID string, cfg story.Config, opts StoryOptions) (string, error) {
	targetWords := story.ChapterTargetWords(cfg)
	chapters := make([]string, 0, cfg.Chapters)

	for number := 1; number <= cfg.Chapters; number++ {
		window := trailingWindow(strings.Join(chapters, chunker.Separator), maxContextChars)
		prompt := story.BuildChapterPrompt(cfg, number, window, targetWords)

		text, err := o.client.Generate(ctx, prompt, opts.Temperature)
		if err != nil {
			return "", fmt.Errorf("chapter %d of %d: %w", number, cfg.Chapters, err)
		}
		text = strings.TrimSpace(text)
		chapters = append(chapters, text)
		logger.Debug("[orchestrate] run %s: chapter %d/%d done (%d chars)", runID, number, cfg.Chapters, len(text))
		if opts.OnChapter != nil {
			opts.OnChapter(number, text)
		}
	}
	return strings.Join(chapters, chunker.Separator), nil
}

// Translate renders text into the target language, splitting oversized input
// into ordered chunks and reassembling the translations in source order.
func (o *Orchestrator) Translate(ctx context.Context, text, language string, opts TranslateOptions) (string, error) {
	maxChars := opts.MaxChars
	if maxChars <= 0 {
		maxChars = chunker.DefaultMaxChars
	}

	chunks := chunker.Split(text, maxChars)
	if len(chunks) == 0 {
		return "", story.ErrEmptyText
	}

	runID := uuid.NewString()
	logger.Info("[orchestrate] run %s: translating to %s in %d chunk(s)", runID, language, len(chunks))

	if len(chunks) == 1 {
		prompt, err := story.BuildTranslationPrompt(chunks[0], language, 0, 0)
		if err != nil {
			return "", err
		}
		out, err := o.client.Generate(ctx, prompt, opts.Temperature)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(out), nil
	}

	// Chunks go out strictly in order: each prompt names its position so the
	// model keeps continuity without restating earlier parts.
	translated := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		prompt, err := story.BuildTranslationPrompt(chunk, language, i+1, len(chunks))
		if err != nil {
			return "", err
		}
		out, err := o.client.Generate(ctx, prompt, opts.Temperature)
		if err != nil {
			return "", fmt.Errorf("chunk %d of %d: %w", i+1, len(chunks), err)
		}
		translated = append(translated, strings.TrimSpace(out))
		logger.Debug("[orchestrate] run %s: chunk %d/%d done", runID, i+1, len(chunks))
		if opts.OnChunk != nil {
			opts.OnChunk(i+1, len(chunks))
		}
	}
	return chunker.Join(translated), nil
}

// fallsBackToChapters reports whether a single-shot failure is worth one
// chaptered retry: a truncated response or one whose shape could not be
// parsed. Transport and validation failures surface as-is.
func fallsBackToChapters(err error) bool {
	if errors.Is(err, gemini.ErrTruncated) {
		return true
	}
	var shapeErr *gemini.ResponseError
	return errors.As(err, &shapeErr)
}

// trailingWindow returns at most max bytes from the end of text, aligned to
// a rune boundary.
func trailingWindow(text string, max int) string {
	if len(text) <= max {
		return text
	}
	start := len(text) - max
	for start < len(text) && !utf8.RuneStart(text[start]) {
		start++
	}
	return text[start:]
}
