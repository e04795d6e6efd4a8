package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrNoAPIKey = errors.New("assistant API key not configured")

const systemPrompt = `You are a helpful health assistant for elderly care. Provide concise, accurate information about health, medications, wellness, and elderly care. Keep responses friendly, clear, and focused on health topics. Avoid giving specific medical advice that should come from a doctor. If asked about emergencies, always recommend contacting emergency services or a healthcare provider.`

// Provider answers a free-text prompt.
type Provider interface {
	Complete(ctx context.Context, message string) (string, error)
}

// Gemini API 请求结构
type GeminiRequest struct {
	SystemInstruction *GeminiContent        `json:"systemInstruction,omitempty"`
	Contents          []GeminiContent       `json:"contents"`
	GenerationConfig  *GeminiGenerationConf `json:"generationConfig,omitempty"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

type GeminiGenerationConf struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
}

// Gemini API 响应结构
type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GeminiProvider calls the generateContent endpoint.
type GeminiProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func NewGeminiProvider(apiKey, model, endpoint string, timeout time.Duration) *GeminiProvider {
	return &GeminiProvider{
		apiKey:   apiKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (g *GeminiProvider) Complete(ctx context.Context, message string) (string, error) {
	if g.apiKey == "" {
		return "", ErrNoAPIKey
	}

	reqBody := GeminiRequest{
		SystemInstruction: &GeminiContent{Parts: []GeminiPart{{Text: systemPrompt}}},
		Contents: []GeminiContent{
			{Role: "user", Parts: []GeminiPart{{Text: message}}},
		},
		GenerationConfig: &GeminiGenerationConf{MaxOutputTokens: 300, Temperature: 0.7},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	// 密钥放在请求头中，避免随 URL 出现在错误日志里
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.endpoint, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error: %s", string(body))
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if geminiResp.Error != nil {
		return "", fmt.Errorf("Gemini error: %s", geminiResp.Error.Message)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}
