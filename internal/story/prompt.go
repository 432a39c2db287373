package story

import (
	"errors"
	"fmt"
	"strings"
)

// MinChapterWords is the floor for a per-chapter word target.
const MinChapterWords = 200

var ErrEmptyText = errors.New("text to translate is empty")

const (
	fallbackCharacterLine = "- Introduce 1-3 fitting characters but keep them stable once named."
	fallbackTwistLine     = "- Subtle reveal tied to family legacy"

	// Marker used when chaptered generation has produced nothing yet. Later
	// chapter prompts must never contain it.
	noHistoryMarker = "No chapters have been written yet."

	finalChapterInstruction    = "Resolve all arcs with the specified ending mood."
	nonFinalChapterInstruction = "End with a natural beat that leads into the next chapter without cliffhangers that derail tone."
)

// ChapterTargetWords computes the per-chapter word budget.
func ChapterTargetWords(cfg Config) int {
	chapters := cfg.Chapters
	if chapters < 1 {
		chapters = 1
	}
	target := cfg.WordLength / chapters
	if target < MinChapterWords {
		target = MinChapterWords
	}
	return target
}

// BuildStoryPrompt renders the single-shot instruction for an entire story.
func BuildStoryPrompt(cfg Config) string {
	var b strings.Builder
	b.WriteString("You are an accomplished English-language storyteller deeply familiar with Maharashtrian culture.\n")
	b.WriteString("Write a cohesive narrative that never contradicts previously stated facts and stays grounded in\n")
	b.WriteString("authentic Maharashtrian settings, customs, food, and idioms.\n\n")

	b.WriteString("Story brief:\n")
	fmt.Fprintf(&b, "- Core description: %s\n", cfg.Description)
	b.WriteString("- Characters to use consistently:\n")
	b.WriteString(bulletList(cfg.Characters, fallbackCharacterLine))
	fmt.Fprintf(&b, "- Genre: %s\n", cfg.Genre)
	fmt.Fprintf(&b, "- Writing style: %s\n", cfg.WritingStyle)
	fmt.Fprintf(&b, "- Literary inspiration: %s\n", cfg.LiteratureInspiration)
	fmt.Fprintf(&b, "- Target length: about %d words (plus or minus 10%%)\n", cfg.WordLength)
	fmt.Fprintf(&b, "- Chapter count: Exactly %d chapters, each headed as \"Chapter N: <title>\"\n", cfg.Chapters)
	b.WriteString("- Plot twists to integrate organically:\n")
	b.WriteString(bulletList(cfg.PlotTwists, fallbackTwistLine))
	fmt.Fprintf(&b, "- Ending mood/type: %s\n\n", cfg.EndingType)

	b.WriteString("Output rules:\n")
	b.WriteString("1. Deliver only the story prose broken into the requested chapters.\n")
	b.WriteString("2. Keep voice, tone, and character motivations steady throughout.\n")
	b.WriteString("3. Avoid bullet lists, explanations, or meta commentary.\n")
	b.WriteString("4. Ensure every chapter advances the plot and reflects Maharashtrian context (places, festivals, idioms).\n")
	b.WriteString("5. Close with the specified ending mood without introducing new characters in the final paragraph.")
	return b.String()
}

// BuildChapterPrompt renders the instruction for one chapter of a sequential
// run. priorContext is the trailing window of already generated text; the
// caller bounds it.
func BuildChapterPrompt(cfg Config, chapterNumber int, priorContext string, targetWords int) string {
	historyBlock := noHistoryMarker
	if prior := strings.TrimSpace(priorContext); prior != "" {
		historyBlock = "Previously delivered chapters (do not rewrite or restate them, only reference as needed):\n" + prior
	}

	closing := nonFinalChapterInstruction
	if chapterNumber == cfg.Chapters {
		closing = finalChapterInstruction
	}

	var b strings.Builder
	b.WriteString("You are continuing an English-language Maharashtrian story. Maintain tone, pacing, and all factual details.\n\n")

	b.WriteString("Global story brief (apply to every chapter):\n")
	fmt.Fprintf(&b, "- Core description: %s\n", cfg.Description)
	b.WriteString("- Characters to reuse consistently:\n")
	b.WriteString(bulletList(cfg.Characters, fallbackCharacterLine))
	fmt.Fprintf(&b, "- Genre: %s\n", cfg.Genre)
	fmt.Fprintf(&b, "- Writing style: %s\n", cfg.WritingStyle)
	fmt.Fprintf(&b, "- Literary inspiration: %s\n", cfg.LiteratureInspiration)
	b.WriteString("- Plot twists to weave across chapters:\n")
	b.WriteString(bulletList(cfg.PlotTwists, fallbackTwistLine))
	fmt.Fprintf(&b, "- Ending mood/type: %s\n\n", cfg.EndingType)

	b.WriteString("Previously written material:\n")
	b.WriteString(historyBlock)
	b.WriteString("\n\n")

	b.WriteString("Task:\n")
	fmt.Fprintf(&b, "- Write Chapter %d of %d, roughly %d words.\n", chapterNumber, cfg.Chapters, targetWords)
	fmt.Fprintf(&b, "- Begin with the heading \"Chapter %d: <concise title>\".\n", chapterNumber)
	b.WriteString("- Keep all characters' motivations, relationships, and cultural details consistent with earlier chapters.\n")
	b.WriteString("- Advance the plot meaningfully; reference earlier events naturally.\n")
	b.WriteString("- Avoid summarising past chapters verbatim.\n")
	fmt.Fprintf(&b, "- %s\n\n", closing)

	b.WriteString("Output only the prose for this chapter.")
	return b.String()
}

// BuildTranslationPrompt renders a literal-translation instruction. When
// chunkIndex and chunkCount are both positive the prompt carries a continuity
// note for multi-chunk documents.
func BuildTranslationPrompt(text, targetLanguage string, chunkIndex, chunkCount int) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	language := strings.TrimSpace(targetLanguage)
	if language == "" {
		language = DefaultTranslationLanguage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert literary translator. Translate the story below into %s.\n\n", language)

	b.WriteString("Translation rules:\n")
	b.WriteString("1. Translate literally and completely; do not summarise, omit, or embellish anything.\n")
	b.WriteString("2. Preserve the structure exactly: keep every chapter heading, paragraph break, and line order.\n")
	b.WriteString("3. Carry over the emotional tone and register of the original prose.\n")
	b.WriteString("4. Output only the translated text, with no commentary, notes, or code fences.\n")

	if chunkIndex > 0 && chunkCount > 0 {
		fmt.Fprintf(&b, "\nThis is part %d of %d of a longer story. Translate only this part.\n", chunkIndex, chunkCount)
		b.WriteString("Do not repeat content from earlier parts; keep names, terms, and narrative continuity consistent with them.\n")
	}

	b.WriteString("\nStory to translate:\n")
	b.WriteString(text)
	return b.String(), nil
}

func bulletList(items []string, fallback string) string {
	items = cleanList(items)
	if len(items) == 0 {
		return fallback + "\n"
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}
