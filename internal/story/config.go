package story

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Default knob values applied when a numeric field is absent or invalid.
const (
	DefaultWordLength = 900
	DefaultChapters   = 3
)

var ErrMissingFields = errors.New("missing required fields")

// Config describes one story to generate. It is validated once by the shell
// that builds it and never mutated afterwards.
type Config struct {
	Description           string   `json:"story_description"`
	Characters            []string `json:"characters"`
	Genre                 string   `json:"genre"`
	WritingStyle          string   `json:"writing_style"`
	LiteratureInspiration string   `json:"literature_inspiration"`
	WordLength            int      `json:"word_length"`
	Chapters              int      `json:"chapters"`
	PlotTwists            []string `json:"plot_twists"`
	EndingType            string   `json:"ending_type"`
}

// jsonConfig tolerates the loose shapes story documents arrive in: list
// fields may be arrays or comma-separated strings, numbers may be strings.
type jsonConfig struct {
	Description           string       `json:"story_description"`
	Characters            flexibleList `json:"characters"`
	Genre                 string       `json:"genre"`
	WritingStyle          string       `json:"writing_style"`
	LiteratureInspiration string       `json:"literature_inspiration"`
	WordLength            flexibleInt  `json:"word_length"`
	Chapters              flexibleInt  `json:"chapters"`
	PlotTwists            flexibleList `json:"plot_twists"`
	EndingType            string       `json:"ending_type"`
}

type flexibleList []string

func (l *flexibleList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = cleanList(items)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*l = SplitList(raw)
		return nil
	}
	return fmt.Errorf("expected a list or a comma-separated string, got %s", string(data))
}

type flexibleInt int

func (n *flexibleInt) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err == nil {
		*n = flexibleInt(v)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		parsed, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			*n = 0
			return nil
		}
		*n = flexibleInt(parsed)
		return nil
	}
	// Unparseable values fall back to the field default in Normalize.
	*n = 0
	return nil
}

// FromJSON decodes a story document, applies numeric defaults and trims
// every field. The result still needs Validate before use.
func FromJSON(data []byte) (Config, error) {
	var raw jsonConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("decode story config: %w", err)
	}
	cfg := Config{
		Description:           raw.Description,
		Characters:            raw.Characters,
		Genre:                 raw.Genre,
		WritingStyle:          raw.WritingStyle,
		LiteratureInspiration: raw.LiteratureInspiration,
		WordLength:            int(raw.WordLength),
		Chapters:              int(raw.Chapters),
		PlotTwists:            raw.PlotTwists,
		EndingType:            raw.EndingType,
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize trims string fields, drops empty list entries and replaces
// non-positive numeric knobs with their defaults.
func (c *Config) Normalize() {
	c.Description = strings.TrimSpace(c.Description)
	c.Genre = strings.TrimSpace(c.Genre)
	c.WritingStyle = strings.TrimSpace(c.WritingStyle)
	c.LiteratureInspiration = strings.TrimSpace(c.LiteratureInspiration)
	c.EndingType = strings.TrimSpace(c.EndingType)
	c.Characters = cleanList(c.Characters)
	c.PlotTwists = cleanList(c.PlotTwists)
	if c.WordLength <= 0 {
		c.WordLength = DefaultWordLength
	}
	if c.Chapters <= 0 {
		c.Chapters = DefaultChapters
	}
}

// Validate reports every required field that is empty after trimming.
// Only word_length and chapters have defaults; the rest must be supplied.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Description) == "" {
		missing = append(missing, "story_description")
	}
	if len(cleanList(c.Characters)) == 0 {
		missing = append(missing, "characters")
	}
	if strings.TrimSpace(c.Genre) == "" {
		missing = append(missing, "genre")
	}
	if strings.TrimSpace(c.WritingStyle) == "" {
		missing = append(missing, "writing_style")
	}
	if strings.TrimSpace(c.LiteratureInspiration) == "" {
		missing = append(missing, "literature_inspiration")
	}
	if strings.TrimSpace(c.EndingType) == "" {
		missing = append(missing, "ending_type")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

// SplitList splits a comma-separated field into trimmed, non-empty items.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	return cleanList(parts)
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
