// pkg/ai/gemini_client.go

package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"

	"hoacuong/pkg/i18n"
	"hoacuong/pkg/store"
)

type Gemini struct {
	endpoint string
	key      string
	model    string
	lang     string
	httpc    *http.Client
}

type Option func(*Gemini)

// WithHTTPClient replaces the transport client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gemini) { g.httpc = c }
}

// NewGemini builds the adapter. An empty key is allowed: every call then
// answers with the "configure a key" message without touching the network.
// No client timeout is set; calls are bounded only by the caller's context.
func NewGemini(endpoint, key, model, lang string, opts ...Option) *Gemini {
	if endpoint == "" {
		endpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	g := &Gemini{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
		lang:     lang,
		httpc:    &http.Client{},
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *Gemini) Configured() bool { return g.key != "" }

func (g *Gemini) GenerateInsights(ctx context.Context, prompt string, snap store.Snapshot) string {
	if !g.Configured() {
		logrus.Warn("Gemini API key is missing")
		return i18n.T(g.lang, i18n.KeyAINoKey)
	}
	full, err := BuildPrompt(prompt, snap, g.lang)
	if err != nil {
		logrus.WithError(err).Error("Gemini prompt")
		return i18n.T(g.lang, i18n.KeyAIFailed)
	}
	text, err := g.generate(ctx, full)
	if err != nil {
		logrus.WithError(err).WithField("model", g.model).Error("Gemini API error")
		return i18n.T(g.lang, i18n.KeyAIFailed)
	}
	if strings.TrimSpace(text) == "" {
		return i18n.T(g.lang, i18n.KeyAIEmpty)
	}
	return text
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func (g *Gemini) generate(ctx context.Context, prompt string) (string, error) {
	body, err := sonic.Marshal(geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	url := fmt.Sprintf("%s/%s:generateContent", g.endpoint, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.key)

	resp, err := g.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var out geminiResponse
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("gemini error %d: %s", out.Error.Code, out.Error.Message)
	}
	if len(out.Candidates) == 0 {
		return "", errors.New("no candidates")
	}
	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
