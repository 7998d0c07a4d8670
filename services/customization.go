package services

import (
	"context"
	"strings"

	"restaurant-menu-api/apperr"
	"restaurant-menu-api/models"
	"restaurant-menu-api/nutrition"
	"restaurant-menu-api/store"

	"go.uber.org/zap"
)

// ProteinOptionName is the name fragment used by the protein endpoints.
const ProteinOptionName = "protein"

// EnrichedValue is an option value with zero-filled nutrition and its diet names.
type EnrichedValue struct {
	ID             string          `json:"id"`
	CustomOptionID string          `json:"custom_option_id"`
	Name           string          `json:"name"`
	DefaultPortion string          `json:"default_portion"`
	Nutrition      nutrition.Facts `json:"nutrition"`
	Diets          []string        `json:"diets"`
	IsVegan        bool            `json:"is_vegan"`
}

type OptionWithValues struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Values      []EnrichedValue `json:"values"`
}

type ItemWithProteinOptions struct {
	MenuItemLeaf
	MenuID         string          `json:"menu_id"`
	ProteinOptions []EnrichedValue `json:"protein_options"`
}

type ScaledPortion struct {
	PortionID   string          `json:"portion_id"`
	PortionType string          `json:"portion_type"`
	Multiplier  float64         `json:"multiplier"`
	Nutrition   nutrition.Facts `json:"nutrition"`
}

type PortionedValue struct {
	EnrichedValue
	Portions []ScaledPortion `json:"portions"`
}

type PortionedOption struct {
	OptionID   string           `json:"option_id"`
	OptionName string           `json:"option_name"`
	Values     []PortionedValue `json:"values"`
}

type CustomizationService struct {
	gw     store.Gateway
	logger *zap.SugaredLogger
}

func NewCustomizationService(gw store.Gateway, logger *zap.SugaredLogger) *CustomizationService {
	return &CustomizationService{gw: gw, logger: logger}
}

// ResolveOption finds the option whose name contains fragment, ignoring case.
// Several matches resolve to the lowest id.
func (s *CustomizationService) ResolveOption(ctx context.Context, fragment string) (*models.CustomOption, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, apperr.Validation("option name is required")
	}
	options, err := s.gw.FindOptionsByName(ctx, fragment)
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, apperr.NotFound("no custom option matches " + fragment)
	}
	best := options[0]
	for _, o := range options[1:] {
		if o.ID < best.ID {
			best = o
		}
	}
	if len(options) > 1 {
		s.logger.Debugw("several options matched, using lowest id", "fragment", fragment, "option_id", best.ID, "matches", len(options))
	}
	return &best, nil
}

// EnrichedValues returns every value of the option. An option without values is NotFound.
func (s *CustomizationService) EnrichedValues(ctx context.Context, optionID string) ([]EnrichedValue, error) {
	values, err := s.gw.ListOptionValues(ctx, []string{optionID})
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, apperr.NotFound("no option values found for option " + optionID)
	}
	return enrichValues(ctx, s.gw, values)
}

func enrichValues(ctx context.Context, gw store.Gateway, values []models.OptionValue) ([]EnrichedValue, error) {
	ids := make([]string, 0, len(values))
	for _, v := range values {
		ids = append(ids, v.ID)
	}
	facts, err := gw.ValueNutrition(ctx, ids)
	if err != nil {
		return nil, err
	}
	diets, err := gw.ValueDietNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]EnrichedValue, 0, len(values))
	for _, v := range values {
		names := diets[v.ID]
		if names == nil {
			names = []string{}
		}
		out = append(out, EnrichedValue{
			ID:             v.ID,
			CustomOptionID: v.CustomOptionID,
			Name:           v.Name,
			DefaultPortion: v.DefaultPortion,
			Nutrition:      nutrition.FromModel(facts[v.ID]),
			Diets:          names,
			IsVegan:        IsVegan(names),
		})
	}
	return out, nil
}

// ProteinMenuItems lists active items carrying the protein option, each with the ranked values.
func (s *CustomizationService) ProteinMenuItems(ctx context.Context) ([]ItemWithProteinOptions, error) {
	option, err := s.ResolveOption(ctx, ProteinOptionName)
	if err != nil {
		return nil, err
	}
	values, err := s.EnrichedValues(ctx, option.ID)
	if err != nil {
		return nil, err
	}
	ranked := RankProteinValues(values)

	items, err := s.gw.ItemsWithOption(ctx, option.ID)
	if err != nil {
		return nil, err
	}
	out := make([]ItemWithProteinOptions, 0, len(items))
	for _, it := range items {
		out = append(out, ItemWithProteinOptions{
			MenuItemLeaf:   leafOf(it),
			MenuID:         it.MenuID,
			ProteinOptions: ranked,
		})
	}
	return out, nil
}

// ProteinOptionsWithPortions returns the protein values with one scaled record per portion.
func (s *CustomizationService) ProteinOptionsWithPortions(ctx context.Context) (*PortionedOption, error) {
	option, err := s.ResolveOption(ctx, ProteinOptionName)
	if err != nil {
		return nil, err
	}
	values, err := s.EnrichedValues(ctx, option.ID)
	if err != nil {
		return nil, err
	}
	portions, err := s.gw.ListPortions(ctx, option.ID)
	if err != nil {
		return nil, err
	}

	out := &PortionedOption{
		OptionID:   option.ID,
		OptionName: option.Name,
		Values:     make([]PortionedValue, 0, len(values)),
	}
	for _, v := range values {
		scaled := make([]ScaledPortion, 0, len(portions))
		for _, p := range portions {
			m := nutrition.Multiplier(p)
			scaled = append(scaled, ScaledPortion{
				PortionID:   p.ID,
				PortionType: p.PortionType,
				Multiplier:  m,
				Nutrition:   nutrition.Scale(v.Nutrition, m),
			})
		}
		out.Values = append(out.Values, PortionedValue{EnrichedValue: v, Portions: scaled})
	}
	return out, nil
}

// ItemCustomizations lists every option attached to the item with its enriched values.
func (s *CustomizationService) ItemCustomizations(ctx context.Context, itemID string) ([]OptionWithValues, error) {
	if _, err := s.gw.GetMenuItem(ctx, itemID); err != nil {
		return nil, err
	}
	groups, err := loadItemOptions(ctx, s.gw, itemID)
	if err != nil {
		return nil, err
	}
	enriched, err := enrichValues(ctx, s.gw, allValues(groups))
	if err != nil {
		return nil, err
	}
	byOption := make(map[string][]EnrichedValue, len(groups))
	for _, v := range enriched {
		byOption[v.CustomOptionID] = append(byOption[v.CustomOptionID], v)
	}

	out := make([]OptionWithValues, 0, len(groups))
	for _, g := range groups {
		vals := byOption[g.Option.ID]
		if vals == nil {
			vals = []EnrichedValue{}
		}
		out = append(out, OptionWithValues{
			ID:          g.Option.ID,
			Name:        g.Option.Name,
			Description: g.Option.Description,
			Type:        g.Option.Type,
			Values:      vals,
		})
	}
	return out, nil
}
