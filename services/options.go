package services

import (
	"context"

	"restaurant-menu-api/models"
	"restaurant-menu-api/store"
)

// optionGroup is one customization of an item with its values in store order.
type optionGroup struct {
	Option models.CustomOption
	Values []models.OptionValue
}

func loadItemOptions(ctx context.Context, gw store.Gateway, itemID string) ([]optionGroup, error) {
	options, err := gw.ItemCustomizations(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, nil
	}
	optionIDs := make([]string, 0, len(options))
	for _, o := range options {
		optionIDs = append(optionIDs, o.ID)
	}
	values, err := gw.ListOptionValues(ctx, optionIDs)
	if err != nil {
		return nil, err
	}
	byOption := make(map[string][]models.OptionValue, len(options))
	for _, v := range values {
		byOption[v.CustomOptionID] = append(byOption[v.CustomOptionID], v)
	}

	groups := make([]optionGroup, 0, len(options))
	for _, o := range options {
		groups = append(groups, optionGroup{Option: o, Values: byOption[o.ID]})
	}
	return groups, nil
}

// allValues flattens every group's values, keeping group order.
func allValues(groups []optionGroup) []models.OptionValue {
	var out []models.OptionValue
	for _, g := range groups {
		out = append(out, g.Values...)
	}
	return out
}

func groupOf(groups []optionGroup, optionID string) *optionGroup {
	for i := range groups {
		if groups[i].Option.ID == optionID {
			return &groups[i]
		}
	}
	return nil
}
