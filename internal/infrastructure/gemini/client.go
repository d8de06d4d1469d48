package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps the generative model used for onboarding bio suggestions.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(apiKey string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.8)

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// SuggestBios generates three candidate self-introductions for a fitness
// profile from the fields the user has already filled in.
func (c *Client) SuggestBios(ctx context.Context, name, prefecture, homeGym string, exercises []string) ([]string, error) {
	prompt := fmt.Sprintf(`
		Write 3 short self-introductions for a workout-partner matching app profile.
		Name: %s
		Prefecture: %s
		Home gym: %s
		Favorite exercises: %s

		Task: each introduction is 1-3 sentences, friendly, and mentions what kind of
		training partner the person is looking for. Skip fields that are empty.
		Language: Japanese.
		Output: JSON array of strings. Example: ["...", "...", "..."]
	`, name, prefecture, homeGym, strings.Join(exercises, ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	responseText := strings.TrimSpace(sb.String())
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")

	var bios []string
	if err := json.Unmarshal([]byte(responseText), &bios); err != nil {
		// Model occasionally ignores the JSON instruction; fall back to one
		// suggestion per non-empty line.
		for _, line := range strings.Split(responseText, "\n") {
			line = strings.TrimSpace(line)
			if line != "" && !strings.HasPrefix(line, "[") && !strings.HasSuffix(line, "]") {
				bios = append(bios, line)
			}
		}
		if len(bios) == 0 {
			return nil, fmt.Errorf("failed to parse bio suggestions: %w", err)
		}
	}

	return bios, nil
}
