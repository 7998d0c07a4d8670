package nutrition

import (
	"strings"

	"restaurant-menu-api/models"
)

// PortionType is the scaling tier of an option value.
type PortionType string

const (
	PortionSingle PortionType = "single"
	PortionHalf   PortionType = "half"
	PortionDouble PortionType = "double"
)

// PortionRule maps a portion type to its default nutrition multiplier.
type PortionRule struct {
	Type       PortionType `json:"portion_type"`
	Multiplier float64     `json:"multiplier"`
}

// portionRules is the authoritative lookup used when a portion has no explicit multiplier.
var portionRules = []PortionRule{
	{Type: PortionHalf, Multiplier: 0.5},
	{Type: PortionSingle, Multiplier: 1},
	{Type: PortionDouble, Multiplier: 2},
}

var ruleMap = func() map[PortionType]float64 {
	m := make(map[PortionType]float64, len(portionRules))
	for _, r := range portionRules {
		m[r.Type] = r.Multiplier
	}
	return m
}()

// MultiplierFor returns the table multiplier for a portion type. Unknown types scale by 1.
func MultiplierFor(portionType string) float64 {
	key := PortionType(strings.ToLower(strings.TrimSpace(portionType)))
	if m, ok := ruleMap[key]; ok {
		return m
	}
	return 1
}

// Multiplier resolves the multiplier of a portion: an explicit positive value wins,
// otherwise the portion type table applies.
func Multiplier(p models.Portion) float64 {
	if p.Multiplier != nil && *p.Multiplier > 0 {
		return *p.Multiplier
	}
	return MultiplierFor(p.PortionType)
}

// PortionRules returns the lookup table for documentation endpoints.
func PortionRules() []PortionRule {
	out := make([]PortionRule, len(portionRules))
	copy(out, portionRules)
	return out
}
