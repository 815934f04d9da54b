package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"reelplan/internal/logging"
	"reelplan/internal/services"
	"reelplan/internal/services/llm"
)

// DefaultTopK is the number of lines retrieved when none is configured.
const DefaultTopK = 5

// Answerer composes an answer from retrieved context lines.
// *llm.Client satisfies it.
type Answerer interface {
	Answer(ctx context.Context, question string, contextLines []string) (llm.Answer, error)
}

// Response is the result of Engine.Ask.
type Response struct {
	Question string `json:"question" yaml:"question"`
	Hits     []Hit  `json:"hits" yaml:"hits"`
	Answer   string `json:"answer" yaml:"answer"`
	// Scenes lists scene numbers the answerer cited.
	Scenes []int `json:"scenes,omitempty" yaml:"scenes,omitempty"`
	// Generated is true when Answer came from the answerer rather than the
	// retrieved lines.
	Generated bool `json:"generated" yaml:"generated"`
}

// Engine pairs an index with an optional answerer.
type Engine struct {
	index    *Index
	answerer Answerer
	topK     int
	logger   *slog.Logger
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithTopK overrides how many lines are retrieved per question.
func WithTopK(k int) EngineOption {
	return func(e *Engine) {
		if k > 0 {
			e.topK = k
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine builds an engine. answerer may be nil.
func NewEngine(index *Index, answerer Answerer, opts ...EngineOption) *Engine {
	e := &Engine{
		index:    index,
		answerer: answerer,
		topK:     DefaultTopK,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(logging.String("component", "search"))
	return e
}

// Ask retrieves the lines most relevant to question and answers it.
func (e *Engine) Ask(ctx context.Context, question string) (Response, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Response{}, services.Wrap(services.ErrValidation, "search", "ask", "question is empty", nil)
	}
	hits := e.index.Search(question, e.topK)
	resp := Response{Question: question, Hits: hits}
	lines := make([]string, 0, len(hits))
	for _, hit := range hits {
		lines = append(lines, hit.Text)
	}
	logger := logging.WithContext(ctx, e.logger)
	logger.Debug("retrieved context", logging.Int("hit_count", len(hits)), logging.Int("top_k", e.topK))

	if e.answerer == nil {
		resp.Answer = retrievedAnswer(lines)
		return resp, nil
	}
	answer, err := e.answerer.Answer(ctx, question, lines)
	if err != nil {
		return resp, services.Wrap(services.ErrExternalTool, "search", "answer", "llm request failed", err)
	}
	resp.Answer = answer.Text
	resp.Scenes = answer.Scenes
	resp.Generated = true
	logger.Info("answer generated", logging.Int("cited_scenes", len(answer.Scenes)))
	return resp, nil
}

func retrievedAnswer(lines []string) string {
	if len(lines) == 0 {
		return "No matching scenes or schedule entries."
	}
	var b strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}
	return strings.TrimRight(b.String(), "\n")
}
