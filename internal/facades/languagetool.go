package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/metrics"
	"github.com/sbilibin2017/gw-translator/internal/models"
)

const engineGrammar = "languagetool"

type languageToolResponse struct {
	Matches []struct {
		Message      string `json:"message"`
		Offset       int    `json:"offset"`
		Length       int    `json:"length"`
		Replacements []struct {
			Value string `json:"value"`
		} `json:"replacements"`
	} `json:"matches"`
}

// LanguageToolFacade calls the /v2/check endpoint of a LanguageTool server.
type LanguageToolFacade struct {
	baseURL string
	client  *http.Client
}

func NewLanguageToolFacade(baseURL string, timeout time.Duration) *LanguageToolFacade {
	return &LanguageToolFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Check returns the issues the engine found in text.
func (f *LanguageToolFacade) Check(ctx context.Context, text, language string) ([]models.GrammarMatch, error) {
	start := time.Now()
	matches, err := f.check(ctx, text, language)
	metrics.ObserveEngineCall(engineGrammar, start, err)
	if err != nil {
		logger.FromContext(ctx).Errorw("grammar engine call failed", "language", language, "error", err)
		return nil, err
	}
	return matches, nil
}

func (f *LanguageToolFacade) check(ctx context.Context, text, language string) ([]models.GrammarMatch, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
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
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%d %s: %s", resp.StatusCode, http.StatusText(resp.StatusCode), preview(raw))
	}

	var out languageToolResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("invalid response body: %w", err)
	}

	matches := make([]models.GrammarMatch, 0, len(out.Matches))
	for _, m := range out.Matches {
		gm := models.GrammarMatch{
			Message:      m.Message,
			Offset:       m.Offset,
			Length:       m.Length,
			Replacements: make([]models.GrammarReplacement, 0, len(m.Replacements)),
		}
		for _, r := range m.Replacements {
			gm.Replacements = append(gm.Replacements, models.GrammarReplacement{Value: r.Value})
		}
		matches = append(matches, gm)
	}
	return matches, nil
}
