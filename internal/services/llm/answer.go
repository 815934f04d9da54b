package llm

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// AnswerPrompt instructs the model to stay inside the retrieved context.
const AnswerPrompt = `You are a first assistant director answering questions about a screenplay breakdown.
You receive a question and context lines describing scenes and shooting-schedule entries.
Answer only from the context. If the context does not contain the answer, say so.
Respond with JSON only: {"answer": "<answer in detail>", "scenes": [<scene numbers you relied on>]}`

// Answer is the decoded model response.
type Answer struct {
	Text   string `json:"answer"`
	Scenes []int  `json:"scenes"`
	Raw    string `json:"-"`
}

// Answer asks the model question, grounded on the supplied context lines.
func (c *Client) Answer(ctx context.Context, question string, contextLines []string) (Answer, error) {
	var empty Answer
	question = strings.TrimSpace(question)
	if question == "" {
		return empty, errors.New("llm answer: question required")
	}
	if c.cfg.APIKey == "" {
		return empty, errors.New("llm answer: api key required")
	}
	content, err := c.CompleteJSON(ctx, AnswerPrompt, buildAnswerPrompt(question, contextLines))
	if err != nil {
		return empty, err
	}
	var parsed Answer
	if err := DecodeLLMJSON(content, &parsed); err != nil {
		return empty, fmt.Errorf("llm answer: parse payload: %w", err)
	}
	parsed.Raw = content
	parsed.Text = strings.TrimSpace(parsed.Text)
	if parsed.Text == "" {
		return empty, errors.New("llm answer: empty answer")
	}
	parsed.Scenes = normalizeSceneRefs(parsed.Scenes)
	return parsed, nil
}

func buildAnswerPrompt(question string, contextLines []string) string {
	var b strings.Builder
	b.WriteString("User question: ")
	b.WriteString(question)
	b.WriteString("\n\nContext:\n")
	if len(contextLines) == 0 {
		b.WriteString("(no matching scenes)\n")
	}
	for _, line := range contextLines {
		if line = strings.TrimSpace(line); line != "" {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func normalizeSceneRefs(refs []int) []int {
	seen := make(map[int]struct{}, len(refs))
	out := make([]int, 0, len(refs))
	for _, n := range refs {
		if n <= 0 {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
