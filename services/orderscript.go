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

// Choice is one selected value for one customization.
type Choice struct {
	Option string `json:"option"`
	Value  string `json:"value"`
}

// BuildOrderScript renders the spoken order for an item and its chosen values.
func BuildOrderScript(item string, choices []Choice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi, I would like to order %s.", item)
	if len(choices) == 0 {
		b.WriteString(" No customizations needed.")
	}
	for _, c := range choices {
		fmt.Fprintf(&b, " My choice of %s is %s.", strings.ToLower(c.Option), strings.ToLower(c.Value))
	}
	b.WriteString(" Thank you!")
	return b.String()
}

type OrderScript struct {
	MenuItemID   string   `json:"menu_item_id"`
	MenuItemName string   `json:"menu_item_name"`
	Choices      []Choice `json:"choices"`
	Script       string   `json:"script"`
}

type TranslatedOrderScript struct {
	OrderScript
	Language         string `json:"language"`
	TranslatedScript string `json:"translated_script"`
}

type OrderScriptService struct {
	gw         store.Gateway
	rng        Random
	translator Translator
	logger     *zap.SugaredLogger
}

// NewOrderScriptService accepts a nil translator; translated scripts then fail as not configured.
func NewOrderScriptService(gw store.Gateway, rng Random, translator Translator, logger *zap.SugaredLogger) *OrderScriptService {
	if rng == nil {
		rng = DefaultRandom()
	}
	return &OrderScriptService{gw: gw, rng: rng, translator: translator, logger: logger}
}

// Generate picks one value per customization at random and renders the script.
func (s *OrderScriptService) Generate(ctx context.Context, itemID string) (*OrderScript, error) {
	item, err := s.gw.GetMenuItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	groups, err := loadItemOptions(ctx, s.gw, item.ID)
	if err != nil {
		return nil, err
	}

	choices := make([]Choice, 0, len(groups))
	for _, g := range groups {
		value, ok := pick(s.rng, g.Values)
		if !ok {
			continue
		}
		choices = append(choices, Choice{Option: g.Option.Name, Value: value.Name})
	}
	return &OrderScript{
		MenuItemID:   item.ID,
		MenuItemName: item.DisplayName,
		Choices:      choices,
		Script:       BuildOrderScript(item.DisplayName, choices),
	}, nil
}

// GenerateTranslated renders the script and forwards it to the translation service.
func (s *OrderScriptService) GenerateTranslated(ctx context.Context, itemID, language string) (*TranslatedOrderScript, error) {
	if s.translator == nil {
		return nil, apperr.External("translation service is not configured", nil)
	}
	script, err := s.Generate(ctx, itemID)
	if err != nil {
		return nil, err
	}
	translated, err := s.translator.Translate(ctx, script.Script, language)
	if err != nil {
		if errors.Is(err, apperr.ErrNotConfigured) {
			return nil, apperr.External("translation service is not configured", err)
		}
		s.logger.Warnw("translation failed", "item_id", itemID, "language", language, "error", err)
		return nil, apperr.Translation("failed to translate order script", err)
	}
	return &TranslatedOrderScript{
		OrderScript:      *script,
		Language:         language,
		TranslatedScript: translated,
	}, nil
}
