package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/moodmirror/mirror-match/app/feed"
	"github.com/moodmirror/mirror-match/app/prompt"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	userAgent  string
}

func NewClient(httpClient *http.Client, baseURL string, apiKey string, model string, userAgent string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		userAgent:  userAgent,
	}
}

// Generate performs the single blocking generation round trip for one
// request: system instruction plus structured output schema in, a draft
// feed document out. Any transport, status, or parse problem is returned
// as an error; the caller decides how to degrade. No retries.
func (c *Client) Generate(ctx context.Context, systemPrompt string) (*feed.Draft, error) {
	payload := generateRequest{
		SystemInstruction: &content{
			Parts: []part{{Text: systemPrompt}},
		},
		Contents: []content{
			{
				Role:  "user",
				Parts: []part{{Text: prompt.TriggerMessage}},
			},
		},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   prompt.ResponseSchema(),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call generation service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation service returned HTTP %d: %s", resp.StatusCode, truncate(respBody, 200))
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	text, err := c.extractText(result)
	if err != nil {
		return nil, err
	}

	var draft feed.Draft
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse draft feed: %w", err)
	}

	slog.Debug("Draft feed generated",
		"detected_emotion", draft.DetectedEmotion,
		"items", len(draft.Items))

	return &draft, nil
}

// extractText pulls the JSON document out of the first candidate. The
// schema constrains the model to a single text part.
func (c *Client) extractText(result generateResponse) (string, error) {
	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("generation service returned no candidates")
	}

	parts := result.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", fmt.Errorf("generation service returned an empty candidate")
	}

	return parts[0].Text, nil
}

func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}
