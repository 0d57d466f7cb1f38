package explain

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModelName is the default Gemini model used for plan explanations.
const DefaultModelName = "gemini-2.5-flash"

// maxBullets caps how many explanation lines we accept from the model.
const maxBullets = 3

// Gemini explains plans through the Gemini API. Credentials come from the
// environment, same as any other genai client.
type Gemini struct {
	model string
}

// NewGemini creates a Gemini explainer. An empty model selects
// DefaultModelName.
func NewGemini(model string) *Gemini {
	if model == "" {
		model = DefaultModelName
	}
	return &Gemini{model: model}
}

// Explain asks the model for 1-3 short bullets describing the plan's effects.
// Any transport or payload problem is returned as an error; the caller falls
// back to the deterministic explanation.
func (g *Gemini) Explain(ctx context.Context, summary string) ([]string, error) {
	prompt :=
		"You are a financial plan explainer.\n" +
			"Answer in 1-3 short bullets, concrete and non-fluffy.\n" +
			"Never output PII or any secrets. Avoid generic advice; stick to the specific schedule effects.\n\n" +
			summary + "\n\n" +
			"Task: Explain the proposed plan in 1-3 bullets.\n" +
			"Focus on scheduling moves, pre-cut micro-payments, fees avoided, and the buffer policy."

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("Explain: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("Explain: generate content: %w", err)
	}

	bullets := parseBullets(resp.Text())
	if len(bullets) == 0 {
		return nil, fmt.Errorf("Explain: empty response from model")
	}
	return bullets, nil
}

// parseBullets normalizes model output into plain explanation lines: one per
// non-empty line, bullet markers stripped, capped at maxBullets.
func parseBullets(text string) []string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-•* ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
		if len(bullets) == maxBullets {
			break
		}
	}
	return bullets
}
