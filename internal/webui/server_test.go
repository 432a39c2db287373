package webui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kayz/kathakar/internal/config"
	"github.com/kayz/kathakar/internal/orchestrate"
	"github.com/kayz/kathakar/internal/story"
)

type fakeRunner struct {
	storyText     string
	storyErr      error
	translated    string
	translateErr  error
	lastStoryCfg  story.Config
	lastStoryOpts orchestrate.StoryOptions
	lastLanguage  string
}

func (f *fakeRunner) GenerateStory(_ context.Context, cfg story.Config, opts orchestrate.StoryOptions) (string, error) {
	f.lastStoryCfg = cfg
	f.lastStoryOpts = opts
	return f.storyText, f.storyErr
}

func (f *fakeRunner) Translate(_ context.Context, _, language string, _ orchestrate.TranslateOptions) (string, error) {
	f.lastLanguage = language
	return f.translated, f.translateErr
}

func newTestServer(runner *fakeRunner) *Server {
	return NewServer(runner, config.DefaultConfig())
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

const validGenerateBody = `{
	"story_description": "A monsoon wedding in Pune",
	"characters": "Niraj, Kavya",
	"genre": "Romantic drama",
	"writing_style": "Breezy conversational tone",
	"literature_inspiration": "Vijay Tendulkar's dramatic structures",
	"word_length": 900,
	"chapters": 3,
	"ending_type": "Joyful celebration",
	"temperature": 0.8,
	"mode": "single"
}`

func TestGenerateEndpoint(t *testing.T) {
	runner := &fakeRunner{storyText: "Chapter 1: Rain\n\nProse."}
	handler := newTestServer(runner).Handler()

	rec := postJSON(t, handler, "/api/generate", validGenerateBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var resp textResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Text != runner.storyText {
		t.Fatalf("story text: got %q", resp.Text)
	}
	if runner.lastStoryCfg.Description != "A monsoon wedding in Pune" {
		t.Fatalf("config not passed through: %+v", runner.lastStoryCfg)
	}
	if len(runner.lastStoryCfg.Characters) != 2 {
		t.Fatalf("characters not split: %v", runner.lastStoryCfg.Characters)
	}
	if runner.lastStoryOpts.Mode != orchestrate.ModeSingle || runner.lastStoryOpts.Temperature != 0.8 {
		t.Fatalf("options not passed through: %+v", runner.lastStoryOpts)
	}
}

func TestGenerateEndpointValidation(t *testing.T) {
	runner := &fakeRunner{}
	handler := newTestServer(runner).Handler()

	rec := postJSON(t, handler, "/api/generate", `{"story_description": "  "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("incomplete config should be 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing required fields") {
		t.Fatalf("error body: %s", rec.Body.String())
	}
}

func TestGenerateEndpointRejectsGet(t *testing.T) {
	handler := newTestServer(&fakeRunner{}).Handler()
	req := httptest.NewRequest(http.MethodGet, "/api/generate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestTranslateEndpoint(t *testing.T) {
	runner := &fakeRunner{translated: "अनुवादित कथा"}
	handler := newTestServer(runner).Handler()

	rec := postJSON(t, handler, "/api/translate", `{"text": "Chapter 1: Rain\n\nProse."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if runner.lastLanguage != story.DefaultTranslationLanguage {
		t.Fatalf("language should default from config, got %q", runner.lastLanguage)
	}
}

func TestTranslateEndpointEmptyText(t *testing.T) {
	handler := newTestServer(&fakeRunner{}).Handler()
	rec := postJSON(t, handler, "/api/translate", `{"text": "   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty text should be 400, got %d", rec.Code)
	}
}

func TestTranslateFailureMapsValidationErrors(t *testing.T) {
	runner := &fakeRunner{translateErr: story.ErrEmptyText}
	handler := newTestServer(runner).Handler()
	rec := postJSON(t, handler, "/api/translate", `{"text": "something"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("validation failure should map to 400, got %d", rec.Code)
	}
}

func TestOptionsEndpoint(t *testing.T) {
	handler := newTestServer(&fakeRunner{}).Handler()
	req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var opts map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &opts); err != nil {
		t.Fatalf("decode options: %v", err)
	}
	for _, key := range []string{"genres", "styles", "inspirations", "length_presets", "chapters", "plot_twists", "endings", "models", "languages"} {
		if _, found := opts[key]; !found {
			t.Fatalf("options missing %q", key)
		}
	}
}

func TestIndexServesForm(t *testing.T) {
	handler := newTestServer(&fakeRunner{}).Handler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Story description") {
		t.Fatal("index page should render the story form")
	}
}
