package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-menu-api/apperr"
	"restaurant-menu-api/store"

	"go.uber.org/zap"
)

type MenuImage struct {
	MenuItemID  string `json:"menu_item_id"`
	OptionValue string `json:"option_value,omitempty"`
	Prompt      string `json:"prompt"`
	ImageURL    string `json:"image_url"`
}

type ImageService struct {
	gw        store.Gateway
	rng       Random
	generator ImageGenerator
	logger    *zap.SugaredLogger
}

func NewImageService(gw store.Gateway, rng Random, generator ImageGenerator, logger *zap.SugaredLogger) *ImageService {
	if rng == nil {
		rng = DefaultRandom()
	}
	return &ImageService{gw: gw, rng: rng, generator: generator, logger: logger}
}

// BuildImagePrompt describes the dish for an image model.
func BuildImagePrompt(item, description, value string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A realistic, appetizing photo of %s", item)
	if value != "" {
		fmt.Fprintf(&b, " with %s", strings.ToLower(value))
	}
	b.WriteString(", plated for a restaurant menu")
	if d := strings.TrimSpace(description); d != "" {
		fmt.Fprintf(&b, ". %s", strings.TrimSuffix(d, "."))
	}
	b.WriteString(".")
	return b.String()
}

// Generate builds a prompt from the item and one random option value and asks the image API for a URL.
func (s *ImageService) Generate(ctx context.Context, itemID string) (*MenuImage, error) {
	if s.generator == nil {
		return nil, apperr.External("image generation is not configured", nil)
	}
	item, err := s.gw.GetMenuItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	groups, err := loadItemOptions(ctx, s.gw, item.ID)
	if err != nil {
		return nil, err
	}

	out := &MenuImage{MenuItemID: item.ID}
	if value, ok := pick(s.rng, allValues(groups)); ok {
		out.OptionValue = value.Name
	}
	out.Prompt = BuildImagePrompt(item.DisplayName, item.Description, out.OptionValue)

	url, err := s.generator.Generate(ctx, out.Prompt)
	if err != nil {
		if errors.Is(err, apperr.ErrNotConfigured) {
			return nil, apperr.External("image generation is not configured", err)
		}
		s.logger.Errorw("image generation failed", "item_id", item.ID, "error", err)
		return nil, apperr.External("image generation failed", err)
	}
	out.ImageURL = url
	return out, nil
}
