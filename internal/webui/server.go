package webui

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/kayz/kathakar/internal/config"
	"github.com/kayz/kathakar/internal/gemini"
	"github.com/kayz/kathakar/internal/orchestrate"
	"github.com/kayz/kathakar/internal/story"
)

// Runner is the orchestration surface the web shell drives.
type Runner interface {
	GenerateStory(ctx context.Context, cfg story.Config, opts orchestrate.StoryOptions) (string, error)
	Translate(ctx context.Context, text, language string, opts orchestrate.TranslateOptions) (string, error)
}

type Server struct {
	runner    Runner
	cfg       *config.Config
	startedAt time.Time
}

func NewServer(runner Runner, cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		runner:    runner,
		cfg:       cfg,
		startedAt: time.Now().UTC(),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/options", s.handleOptions)
	mux.HandleFunc("/api/generate", s.handleGenerate)
	mux.HandleFunc("/api/translate", s.handleTranslate)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"started_at": s.startedAt.Format(time.RFC3339),
		"uptime_sec": int(time.Since(s.startedAt).Seconds()),
	})
}

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"genres":         story.GenreOptions,
		"styles":         story.StyleOptions,
		"inspirations":   story.InspirationOptions,
		"length_presets": story.LengthPresets,
		"chapters":       story.ChapterOptions,
		"plot_twists":    story.PlotTwistOptions,
		"endings":        story.EndingOptions,
		"models":         story.ModelOptions,
		"languages":      story.TranslationLanguages,
	})
}

type generateExtras struct {
	Temperature float64 `json:"temperature"`
	Mode        string  `json:"mode"`
}

type textResponse struct {
	Text string `json:"text"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	body, err := readBody(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	cfg, err := story.FromJSON(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := cfg.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var extras generateExtras
	_ = json.Unmarshal(body, &extras)
	if extras.Temperature <= 0 {
		extras.Temperature = s.cfg.Generation.Temperature
	}
	mode, err := orchestrate.ParseMode(extras.Mode)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	// Runs are not canceled mid-flight when the browser disconnects; the
	// client simply discards the response.
	text, err := s.runner.GenerateStory(context.Background(), cfg, orchestrate.StoryOptions{
		Mode:        mode,
		Temperature: extras.Temperature,
	})
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Text: text})
}

type translateRequest struct {
	Text        string  `json:"text"`
	Language    string  `json:"language"`
	Temperature float64 `json:"temperature"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "text is required"})
		return
	}
	if strings.TrimSpace(req.Language) == "" {
		req.Language = s.cfg.Translation.Language
	}
	if req.Temperature <= 0 {
		req.Temperature = s.cfg.Translation.Temperature
	}

	text, err := s.runner.Translate(context.Background(), req.Text, req.Language, orchestrate.TranslateOptions{
		Temperature: req.Temperature,
		MaxChars:    s.cfg.Translation.MaxChars,
	})
	if err != nil {
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Text: text})
}

func readBody(r *http.Request) ([]byte, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// statusFor maps orchestration failures onto HTTP statuses.
func statusFor(err error) int {
	if errors.Is(err, story.ErrMissingFields) || errors.Is(err, story.ErrEmptyText) {
		return http.StatusBadRequest
	}
	var upstream *gemini.StatusError
	if errors.As(err, &upstream) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
