package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/balamt/bagmytrip/domain"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient implements domain.Generator against the Google
// generative language REST API. A single synchronous call per request,
// no streaming, no retry.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewGeminiClient creates a new Gemini client. An empty apiKey yields a
// client that reports itself unconfigured.
func NewGeminiClient(apiKey, model, baseURL string, timeout time.Duration, logger *zap.Logger) *GeminiClient {
	if model == "" {
		model = "gemini-1.5-pro"
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &GeminiClient{
		apiKey:  strings.TrimSpace(apiKey),
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Configured implements domain.Generator
func (g *GeminiClient) Configured() bool {
	return g.apiKey != ""
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate implements domain.Generator
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if !g.Configured() {
		return "", domain.ErrGenAINotConfigured
	}

	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode generation request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		g.logger.Warn("gemini upstream error", zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	slurp, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", domain.ErrGenerationFailed, err)
	}

	if resp.StatusCode/100 != 2 {
		g.logger.Warn("gemini non-2xx response",
			zap.Int("status", resp.StatusCode),
			zap.String("model", g.model))
		return "", fmt.Errorf("%w: upstream status %d", domain.ErrGenerationFailed, resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(slurp, &parsed); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", domain.ErrGenerationFailed, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrGenerationFailed, parsed.Error.Status)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates returned", domain.ErrGenerationFailed)
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// Compile-time interface compliance verification
var _ domain.Generator = (*GeminiClient)(nil)
