package services

import (
	"context"
	"fmt"

	"restaurant-menu-api/models"
	"restaurant-menu-api/store"

	"go.uber.org/zap"
)

type FlaggedIngredient struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	PossibleAllergens string `json:"possible_allergens"`
}

type SelectedValue struct {
	OptionID   string `json:"option_id"`
	OptionName string `json:"option_name"`
	ValueID    string `json:"option_value_id"`
	ValueName  string `json:"option_value_name"`
}

// AllergenReport lists the ingredients of an item, plus one selected option value, that carry an allergen.
type AllergenReport struct {
	MenuItemID       string              `json:"menu_item_id"`
	MenuItemName     string              `json:"menu_item_name"`
	AllergenID       string              `json:"allergen_id"`
	AllergenName     string              `json:"allergen_name"`
	SelectedOption   *SelectedValue      `json:"selected_option"`
	Ingredients      []FlaggedIngredient `json:"ingredients"`
	ContainsAllergen bool                `json:"contains_allergen"`
}

type SwapCandidate struct {
	OptionValueID      string              `json:"option_value_id"`
	Name               string              `json:"name"`
	FlaggedIngredients []FlaggedIngredient `json:"flagged_ingredients"`
}

type SwapResult struct {
	MenuItemID   string         `json:"menu_item_id"`
	AllergenID   string         `json:"allergen_id"`
	AllergenName string         `json:"allergen_name"`
	OptionID     string         `json:"option_id,omitempty"`
	OptionName   string         `json:"option_name,omitempty"`
	Original     *SwapCandidate `json:"original"`
	Alternative  *SwapCandidate `json:"alternative"`
	Swapped      bool           `json:"swapped"`
	Message      string         `json:"message"`
}

type AllergenService struct {
	gw     store.Gateway
	rng    Random
	logger *zap.SugaredLogger
}

func NewAllergenService(gw store.Gateway, rng Random, logger *zap.SugaredLogger) *AllergenService {
	if rng == nil {
		rng = DefaultRandom()
	}
	return &AllergenService{gw: gw, rng: rng, logger: logger}
}

// allergenResolution keeps what Swap needs beyond the public report.
type allergenResolution struct {
	report          *AllergenReport
	groups          []optionGroup
	selected        *models.OptionValue
	selectedFlagged []FlaggedIngredient
}

// Check reports which ingredients of the item, and of one randomly selected option value, carry the allergen.
func (s *AllergenService) Check(ctx context.Context, itemID, allergenID string) (*AllergenReport, error) {
	res, err := s.resolve(ctx, itemID, allergenID)
	if err != nil {
		return nil, err
	}
	return res.report, nil
}

func (s *AllergenService) resolve(ctx context.Context, itemID, allergenID string) (*allergenResolution, error) {
	item, err := s.gw.GetMenuItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	allergen, err := s.gw.GetAllergen(ctx, allergenID)
	if err != nil {
		return nil, err
	}

	ingredientIDs, err := s.gw.ItemIngredientIDs(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	groups, err := loadItemOptions(ctx, s.gw, item.ID)
	if err != nil {
		return nil, err
	}

	res := &allergenResolution{groups: groups}
	report := &AllergenReport{
		MenuItemID:   item.ID,
		MenuItemName: item.DisplayName,
		AllergenID:   allergen.ID,
		AllergenName: allergen.Name,
	}

	var selectedIngredients []string
	if value, ok := pick(s.rng, allValues(groups)); ok {
		linked, err := s.gw.ValueIngredientIDs(ctx, []string{value.ID})
		if err != nil {
			return nil, err
		}
		selectedIngredients = linked[value.ID]
		ingredientIDs = union(ingredientIDs, selectedIngredients)

		res.selected = &value
		report.SelectedOption = &SelectedValue{
			OptionID:  value.CustomOptionID,
			ValueID:   value.ID,
			ValueName: value.Name,
		}
		if g := groupOf(groups, value.CustomOptionID); g != nil {
			report.SelectedOption.OptionName = g.Option.Name
		}
	}

	flagged, err := s.gw.IngredientsWithAllergen(ctx, allergen.ID, ingredientIDs)
	if err != nil {
		return nil, err
	}
	report.Ingredients = toFlagged(flagged)
	report.ContainsAllergen = len(report.Ingredients) > 0

	fromValue := setOf(selectedIngredients)
	res.selectedFlagged = []FlaggedIngredient{}
	for _, ing := range report.Ingredients {
		if fromValue[ing.ID] {
			res.selectedFlagged = append(res.selectedFlagged, ing)
		}
	}
	res.report = report
	return res, nil
}

// Swap looks for the first sibling of the selected option value whose ingredients are all
// free of the allergen. A selection that is already allergen-free is returned unchanged.
func (s *AllergenService) Swap(ctx context.Context, itemID, allergenID string) (*SwapResult, error) {
	res, err := s.resolve(ctx, itemID, allergenID)
	if err != nil {
		return nil, err
	}
	out := &SwapResult{
		MenuItemID:   res.report.MenuItemID,
		AllergenID:   res.report.AllergenID,
		AllergenName: res.report.AllergenName,
	}
	if res.selected == nil {
		out.Message = "menu item has no customization options to swap"
		return out, nil
	}

	out.OptionID = res.report.SelectedOption.OptionID
	out.OptionName = res.report.SelectedOption.OptionName
	out.Original = &SwapCandidate{
		OptionValueID:      res.selected.ID,
		Name:               res.selected.Name,
		FlaggedIngredients: res.selectedFlagged,
	}
	if len(res.selectedFlagged) == 0 {
		out.Message = fmt.Sprintf("%s does not contain %s, no swap needed", res.selected.Name, res.report.AllergenName)
		return out, nil
	}

	allergenIngredients, err := s.gw.AllergenIngredientIDs(ctx, res.report.AllergenID)
	if err != nil {
		return nil, err
	}
	flaggedSet := setOf(allergenIngredients)

	var siblings []models.OptionValue
	if g := groupOf(res.groups, res.selected.CustomOptionID); g != nil {
		for _, v := range g.Values {
			if v.ID != res.selected.ID {
				siblings = append(siblings, v)
			}
		}
	}
	siblingIDs := make([]string, 0, len(siblings))
	for _, v := range siblings {
		siblingIDs = append(siblingIDs, v.ID)
	}
	linked, err := s.gw.ValueIngredientIDs(ctx, siblingIDs)
	if err != nil {
		return nil, err
	}

	for _, v := range siblings {
		if intersects(linked[v.ID], flaggedSet) {
			continue
		}
		out.Alternative = &SwapCandidate{OptionValueID: v.ID, Name: v.Name, FlaggedIngredients: []FlaggedIngredient{}}
		out.Swapped = true
		out.Message = fmt.Sprintf("swap %s for %s to avoid %s", res.selected.Name, v.Name, res.report.AllergenName)
		s.logger.Infow("allergen swap found", "item_id", out.MenuItemID, "allergen_id", out.AllergenID, "from", res.selected.ID, "to", v.ID)
		return out, nil
	}

	out.Message = fmt.Sprintf("no %s option without %s is available", out.OptionName, res.report.AllergenName)
	return out, nil
}

func toFlagged(ingredients []models.Ingredient) []FlaggedIngredient {
	out := make([]FlaggedIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, FlaggedIngredient{ID: ing.ID, Name: ing.Name, PossibleAllergens: ing.PossibleAllergens})
	}
	return out
}

// union appends the ids of b missing from a, keeping first-seen order.
func union(a, b []string) []string {
	seen := setOf(a)
	out := append([]string(nil), a...)
	for _, id := range b {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func setOf(ids []string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

func intersects(ids []string, set map[string]bool) bool {
	for _, id := range ids {
		if set[id] {
			return true
		}
	}
	return false
}
