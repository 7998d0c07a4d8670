package services

import (
	"cmp"
	"slices"
	"strings"
)

const veganDiet = "vegan"

// IsVegan reports whether any diet name equals "vegan", ignoring case.
func IsVegan(diets []string) bool {
	for _, d := range diets {
		if strings.EqualFold(strings.TrimSpace(d), veganDiet) {
			return true
		}
	}
	return false
}

// RankProteinValues puts the single highest-protein vegan value first, followed by every
// non-vegan value by descending protein. Other vegan values are left out. Ties keep input order.
func RankProteinValues(values []EnrichedValue) []EnrichedValue {
	var vegan, other []EnrichedValue
	for _, v := range values {
		if IsVegan(v.Diets) {
			vegan = append(vegan, v)
		} else {
			other = append(other, v)
		}
	}
	byProteinDesc := func(a, b EnrichedValue) int {
		return cmp.Compare(b.Nutrition.ProteinG, a.Nutrition.ProteinG)
	}
	slices.SortStableFunc(vegan, byProteinDesc)
	slices.SortStableFunc(other, byProteinDesc)

	ranked := make([]EnrichedValue, 0, len(other)+1)
	if len(vegan) > 0 {
		ranked = append(ranked, vegan[0])
	}
	return append(ranked, other...)
}
