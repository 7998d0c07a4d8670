package clients

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"restaurant-menu-api/apperr"
)

const DefaultTranslateURL = "https://translation.googleapis.com/language/translate/v2"

// TranslateClient calls a Google Translate v2 compatible endpoint.
type TranslateClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewTranslateClient(baseURL, apiKey string, timeout time.Duration) *TranslateClient {
	if baseURL == "" {
		baseURL = DefaultTranslateURL
	}
	return &TranslateClient{client: newHTTPClient(timeout), baseURL: baseURL, apiKey: apiKey}
}

type translateRequest struct {
	Q      []string `json:"q"`
	Target string   `json:"target"`
	Source string   `json:"source"`
	Format string   `json:"format"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate translates English text into targetLanguage.
func (c *TranslateClient) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("TRANSLATE_API_KEY not set: %w", apperr.ErrNotConfigured)
	}
	headers := map[string]string{"X-Goog-Api-Key": c.apiKey}
	body := translateRequest{Q: []string{text}, Target: targetLanguage, Source: "en", Format: "text"}

	var out translateResponse
	if err := postJSON(ctx, c.client, c.baseURL, headers, body, &out); err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	if len(out.Data.Translations) == 0 || strings.TrimSpace(out.Data.Translations[0].TranslatedText) == "" {
		return "", fmt.Errorf("translate: empty translation")
	}
	return out.Data.Translations[0].TranslatedText, nil
}
