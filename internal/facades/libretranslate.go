package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/metrics"
	"github.com/sbilibin2017/gw-translator/internal/models"
)

const engineTranslate = "libretranslate"

type libreTranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreTranslateResponse struct {
	TranslatedText   string `json:"translatedText"`
	DetectedLanguage *struct {
		Language   string  `json:"language"`
		Confidence float64 `json:"confidence"`
	} `json:"detectedLanguage"`
	Error string `json:"error"`
}

// LibreTranslateFacade calls a LibreTranslate compatible HTTP API.
type LibreTranslateFacade struct {
	url    string
	apiKey string
	client *http.Client
}

// NewLibreTranslateFacade creates a facade posting to url with the given client timeout.
func NewLibreTranslateFacade(url, apiKey string, timeout time.Duration) *LibreTranslateFacade {
	return &LibreTranslateFacade{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

// Translate sends text to the engine. Any transport failure, non-2xx status or
// malformed body is returned as an error.
func (f *LibreTranslateFacade) Translate(ctx context.Context, text, source, target string) (*models.Translation, error) {
	start := time.Now()
	tr, err := f.translate(ctx, text, source, target)
	metrics.ObserveEngineCall(engineTranslate, start, err)
	if err != nil {
		logger.FromContext(ctx).Errorw("translation engine call failed",
			"source", source, "target", target, "error", err)
		return nil, err
	}
	return tr, nil
}

func (f *LibreTranslateFacade) translate(ctx context.Context, text, source, target string) (*models.Translation, error) {
	body, err := json.Marshal(libreTranslateRequest{
		Q:      text,
		Source: source,
		Target: target,
		Format: "text",
		APIKey: f.apiKey,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%d %s: %s", resp.StatusCode, http.StatusText(resp.StatusCode), preview(raw))
	}

	var out libreTranslateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("invalid response body: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("engine error: %s", out.Error)
	}

	tr := &models.Translation{Text: out.TranslatedText}
	if out.DetectedLanguage != nil {
		tr.DetectedLanguage = out.DetectedLanguage.Language
	}
	return tr, nil
}

// preview shortens an upstream body for error messages. The result is valid UTF-8.
func preview(raw []byte) string {
	const limit = 300
	s := strings.ToValidUTF8(string(bytes.TrimSpace(raw)), "\uFFFD")
	if utf8.RuneCountInString(s) > limit {
		return string([]rune(s)[:limit]) + "..."
	}
	return s
}
