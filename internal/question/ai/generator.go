package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/question"
)

// Generation sources reported to the recorder.
const (
	SourceGemini   = "gemini"
	SourceFallback = "fallback"
)

const (
	questionCount  = 8
	maxReplyBytes  = 1 << 20
	defaultTimeout = 15 * time.Second
)

const systemPrompt = `You are generating interview questions. Respond ONLY with valid compact JSON.
Schema: {"questions": [{"type": "technical|behavioral", "text": "string"}, ...]}.
No markdown, no backticks, no commentary.`

// Config holds connection details for the Gemini generateContent endpoint.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Recorder counts generation outcomes by source.
type Recorder interface {
	ObserveGeneration(source string)
}

// Generator implements question.Generator on top of Gemini.
type Generator struct {
	httpClient *http.Client
	config     Config
	recorder   Recorder
	logger     zerolog.Logger
	url        string
}

func NewGenerator(cfg Config, recorder Recorder, logger zerolog.Logger) *Generator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	model := cfg.Model
	if !strings.HasPrefix(model, "models/") {
		model = "models/" + model
	}

	return &Generator{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config:   cfg,
		recorder: recorder,
		logger:   logger.With().Str("component", "ai_generator").Logger(),
		url:      fmt.Sprintf("%s/%s:generateContent", strings.TrimSuffix(cfg.BaseURL, "/"), model),
	}
}

// Generate asks Gemini for questions and never fails: a missing key, a
// transport error or an unusable reply all yield the fallback list.
func (g *Generator) Generate(ctx context.Context, jobTitle string) []question.Draft {
	if g.config.APIKey == "" {
		g.observe(SourceFallback)
		return question.FallbackDrafts(jobTitle)
	}

	drafts, err := g.request(ctx, jobTitle)
	if err != nil {
		g.logger.Warn().Err(err).Str("job_title", jobTitle).Msg("gemini generation failed, serving fallback")
		g.observe(SourceFallback)
		return question.FallbackDrafts(jobTitle)
	}

	g.observe(SourceGemini)
	return drafts
}

func (g *Generator) request(ctx context.Context, jobTitle string) ([]question.Draft, error) {
	body, err := json.Marshal(newGeminiRequest(jobTitle))
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.config.APIKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var gResp geminiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReplyBytes)).Decode(&gResp); err != nil {
		return nil, fmt.Errorf("decode gemini payload: %w", err)
	}

	return ParseReply(gResp.text())
}

func (g *Generator) observe(source string) {
	if g.recorder != nil {
		g.recorder.ObserveGeneration(source)
	}
}

// ParseReply extracts the outermost JSON object from a free-form reply and
// keeps only entries with a known type and non-empty text.
func ParseReply(raw string) ([]question.Draft, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return nil, errors.New("no JSON object in reply")
	}

	var payload struct {
		Questions []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("parse reply: %w", err)
	}

	drafts := make([]question.Draft, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		t, ok := question.NormalizeType(q.Type)
		if !ok {
			continue
		}
		text := strings.TrimSpace(q.Text)
		if text == "" {
			continue
		}
		drafts = append(drafts, question.Draft{Type: t, Text: text})
	}
	if len(drafts) == 0 {
		return nil, errors.New("reply contained no usable questions")
	}
	return drafts, nil
}

func newGeminiRequest(jobTitle string) geminiRequest {
	prompt := fmt.Sprintf(
		"Generate %d interview questions (%d technical, %d behavioral) for the job title: '%s'. "+
			"Vary difficulty. Use concise phrasing.",
		questionCount, questionCount/2, questionCount/2, jobTitle)

	return geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents:          []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: map[string]interface{}{
			"temperature":      0.7,
			"responseMimeType": "application/json",
		},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  map[string]interface{} `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// text joins the parts of the first candidate.
func (r geminiResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}
