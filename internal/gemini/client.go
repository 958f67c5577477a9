package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultModel = "gemini-1.5-flash-latest"

type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
}

// NewClient creates a Gemini client. An empty apiKey is allowed here;
// Generate reports it per call so every route can return the fixed
// configuration-error envelope.
func NewClient(apiKey, model string, timeout time.Duration) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		model:      model,
	}
}

// Ready reports whether the client has a key to call with. Routes that
// short-circuit before generating still check this so a missing key is
// reported on every path.
func (c *Client) Ready() error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}
	return nil
}

// Result is the outcome of a successful, non-empty generation.
type Result struct {
	Text         string
	FinishReason string
	TokensUsed   int
}

// Generate performs a single generateContent call. There is no retry: a
// transport failure, a filtered response, and a missing key each surface
// once as a typed error.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*Result, error) {
	if err := c.Ready(); err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("gemini request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != 200 {
		return nil, &TransportError{Err: fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(body))}
	}

	var genResp GenerateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("parse gemini response: %w", err)}
	}

	return classify(&genResp)
}

// classify turns the raw provider response into a Result or a
// FilteredError. Text present wins even when the finish reason is not a
// normal stop (a length-limited answer is still an answer).
func classify(resp *GenerateResponse) (*Result, error) {
	tokensUsed := 0
	if resp.UsageMetadata != nil {
		tokensUsed = resp.UsageMetadata.TotalTokenCount
	}

	if len(resp.Candidates) == 0 {
		reason := "Unknown reason or filtered by API."
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			reason = fmt.Sprintf("Prompt blocked: %s.", resp.PromptFeedback.BlockReason)
		}
		return nil, &FilteredError{Reason: reason}
	}

	cand := resp.Candidates[0]
	var sb strings.Builder
	for _, p := range cand.Content.Parts {
		sb.WriteString(p.Text)
	}
	text := sb.String()

	if text == "" {
		return nil, &FilteredError{Reason: blockReason(cand)}
	}

	return &Result{
		Text:         text,
		FinishReason: cand.FinishReason,
		TokensUsed:   tokensUsed,
	}, nil
}

// blockReason builds a human-readable explanation from the candidate's
// finish reason and any medium/high probability safety ratings.
func blockReason(cand Candidate) string {
	reason := "Unknown reason or filtered by API."
	if cand.FinishReason != "" && cand.FinishReason != FinishReasonStop {
		reason = fmt.Sprintf("Content generation stopped due to: %s.", cand.FinishReason)
		for _, rating := range cand.SafetyRatings {
			if rating.Probability == "HIGH" || rating.Probability == "MEDIUM" {
				reason += " Potentially blocked by safety filters due to high/medium harm probability."
				break
			}
		}
	}
	return reason
}
