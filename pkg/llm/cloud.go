package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// CloudProvider calls an OpenAI-compatible HTTP endpoint for chat
// completions and embeddings.
type CloudProvider struct {
	name       string
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	embedModel string
}

// CloudOptions configures a CloudProvider.
type CloudOptions struct {
	Name       string
	BaseURL    string
	APIKey     string
	Model      string
	EmbedModel string
}

// NewCloudProvider creates a provider against an OpenAI-compatible API.
// Request deadlines come from the caller's context; the router applies
// the per-provider timeout.
func NewCloudProvider(opts CloudOptions) *CloudProvider {
	name := opts.Name
	if name == "" {
		name = "cloud"
	}
	return &CloudProvider{
		name:       name,
		httpClient: &http.Client{},
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		model:      opts.Model,
		embedModel: opts.EmbedModel,
	}
}

func (p *CloudProvider) Name() string   { return p.name }
func (p *CloudProvider) Terminal() bool { return false }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (p *CloudProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	body := chatRequest{
		Model:       p.model,
		Messages:    []chatMessage{{Role: "user", Content: req.Prompt}},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var out chatResponse
	if err := p.post(ctx, "/v1/chat/completions", body, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", &ProviderError{Provider: p.name, Class: FailMalformed, Err: errors.New("empty choices")}
	}
	return out.Choices[0].Message.Content, nil
}

type embedRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embedResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

func (p *CloudProvider) ReasoningVector(ctx context.Context, prompt string) ([]float64, error) {
	var out embedResponse
	if err := p.post(ctx, "/v1/embeddings", embedRequest{Model: p.embedModel, Input: prompt}, &out); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 || len(out.Data[0].Embedding) == 0 {
		return nil, &ProviderError{Provider: p.name, Class: FailMalformed, Err: errors.New("empty embedding")}
	}
	return out.Data[0].Embedding, nil
}

func (p *CloudProvider) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return &ProviderError{Provider: p.name, Class: FailMalformed, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &ProviderError{Provider: p.name, Class: FailTransport, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		class := FailTransport
		if errors.Is(err, context.DeadlineExceeded) {
			class = FailTimeout
		}
		return &ProviderError{Provider: p.name, Class: class, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &ProviderError{
			Provider: p.name,
			Class:    FailStatus,
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("%s returned HTTP %d", path, resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ProviderError{Provider: p.name, Class: FailMalformed, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
