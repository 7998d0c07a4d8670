package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"restaurant-menu-api/apperr"
)

const (
	DefaultImageURL   = "https://api.openai.com/v1/images/generations"
	DefaultImageModel = "dall-e-3"
	imageSize         = "1024x1024"
)

// ImageClient calls an OpenAI images compatible endpoint and returns the hosted URL.
type ImageClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewImageClient(baseURL, apiKey, model string, timeout time.Duration) *ImageClient {
	if baseURL == "" {
		baseURL = DefaultImageURL
	}
	if model == "" {
		model = DefaultImageModel
	}
	return &ImageClient{client: newHTTPClient(timeout), baseURL: baseURL, apiKey: apiKey, model: model}
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (c *ImageClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("IMAGE_API_KEY not set: %w", apperr.ErrNotConfigured)
	}
	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}
	body := imageRequest{Model: c.model, Prompt: prompt, N: 1, Size: imageSize}

	var out imageResponse
	if err := postJSON(ctx, c.client, c.baseURL, headers, body, &out); err != nil {
		return "", fmt.Errorf("generate image: %w", err)
	}
	if len(out.Data) == 0 || out.Data[0].URL == "" {
		return "", fmt.Errorf("generate image: no image returned")
	}
	return out.Data[0].URL, nil
}
