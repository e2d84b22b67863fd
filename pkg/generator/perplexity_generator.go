package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	DefaultPerplexityURL   = "https://api.perplexity.ai/chat/completions"
	DefaultPerplexityModel = "llama-3-sonar-small-32k"

	systemPrompt = "You are a culinary expert specializing in traditional recipes from around the world. " +
		"Provide accurate, authentic recipes in JSON format only."
)

var ErrEmptyCompletion = errors.New("completion contained no choices")

type (
	PerplexityConfig struct {
		APIKey  string
		Model   string
		URL     string
		Timeout time.Duration
	}

	// Perplexity asks a chat-completions endpoint for three traditional dishes.
	Perplexity struct {
		apiKey     string
		model      string
		url        string
		httpClient *http.Client
	}

	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	chatRequest struct {
		Model     string        `json:"model"`
		Messages  []chatMessage `json:"messages"`
		MaxTokens int           `json:"max_tokens"`
	}

	chatResponse struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
)

func NewPerplexity(cfg PerplexityConfig) *Perplexity {
	if cfg.Model == "" {
		cfg.Model = DefaultPerplexityModel
	}
	if cfg.URL == "" {
		cfg.URL = DefaultPerplexityURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Perplexity{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func buildPrompt(req Request) string {
	return fmt.Sprintf(
		"List 3 traditional dishes from %s or the nearest major city to coordinates %.4f, %.4f. "+
			"Format your response as JSON with the following structure: "+
			`{"dishes": [{"name": "Dish name", "ingredients": "Ingredients with quantities, each on a new line", `+
			`"instructions": "Numbered steps, each on a new line", "cultural_note": "A brief note about the dish"}], `+
			`"city": "The actual city name", "country": "The country name"}. `+
			"Don't include any explanations or additional text outside the JSON structure.",
		req.Place, req.Location.Lat, req.Location.Lng,
	)
}

func (p *Perplexity) Generate(ctx context.Context, req Request) (Result, error) {
	if p.apiKey == "" {
		return Result{}, errors.New("generator API key is not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(req)},
		},
		MaxTokens: 2048,
	})
	if err != nil {
		return Result{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, fmt.Errorf("generator API error: %s - %s", resp.Status, string(snippet))
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return Result{}, fmt.Errorf("decode completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return Result{}, ErrEmptyCompletion
	}

	return ParseResult(completion.Choices[0].Message.Content)
}

// ParseResult extracts the JSON object from free-form model output and
// validates it against the dish schema.
func ParseResult(text string) (Result, error) {
	text = strings.TrimSpace(text)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || start > end {
		return Result{}, fmt.Errorf("no JSON object in generator output")
	}

	var res Result
	if err := json.Unmarshal([]byte(text[start:end+1]), &res); err != nil {
		return Result{}, fmt.Errorf("parse generator output: %w", err)
	}

	if err := ValidateResult(&res); err != nil {
		return Result{}, err
	}
	return res, nil
}
