package nutrition

import (
	"restaurant-menu-api/models"

	"github.com/shopspring/decimal"
)

// Facts is a zero-filled nutrition record as returned to clients.
type Facts struct {
	Calories      float64 `json:"calories"`
	ProteinG      float64 `json:"protein_g"`
	FatG          float64 `json:"fat_g"`
	SaturatedFatG float64 `json:"saturated_fat_g"`
	CarbohydrateG float64 `json:"carbohydrate_g"`
	SugarG        float64 `json:"sugar_g"`
	FiberG        float64 `json:"fiber_g"`
	SodiumMg      float64 `json:"sodium_mg"`
	CholesterolMg float64 `json:"cholesterol_mg"`
}

// FromModel copies a stored record, treating a nil record or nil fields as zero.
func FromModel(n *models.Nutrition) Facts {
	if n == nil {
		return Facts{}
	}
	return Facts{
		Calories:      orZero(n.Calories),
		ProteinG:      orZero(n.ProteinG),
		FatG:          orZero(n.FatG),
		SaturatedFatG: orZero(n.SaturatedFatG),
		CarbohydrateG: orZero(n.CarbohydrateG),
		SugarG:        orZero(n.SugarG),
		FiberG:        orZero(n.FiberG),
		SodiumMg:      orZero(n.SodiumMg),
		CholesterolMg: orZero(n.CholesterolMg),
	}
}

// Scale multiplies every field by m. Calories, sodium and cholesterol round to whole
// numbers; gram fields round to two decimals. Halves round away from zero in decimal.
func Scale(f Facts, m float64) Facts {
	return Facts{
		Calories:      scaled(f.Calories, m, 0),
		ProteinG:      scaled(f.ProteinG, m, 2),
		FatG:          scaled(f.FatG, m, 2),
		SaturatedFatG: scaled(f.SaturatedFatG, m, 2),
		CarbohydrateG: scaled(f.CarbohydrateG, m, 2),
		SugarG:        scaled(f.SugarG, m, 2),
		FiberG:        scaled(f.FiberG, m, 2),
		SodiumMg:      scaled(f.SodiumMg, m, 0),
		CholesterolMg: scaled(f.CholesterolMg, m, 0),
	}
}

// scaled multiplies in decimal so 2.01 * 0.5 is exactly 1.005 before rounding.
func scaled(v, m float64, places int32) float64 {
	return decimal.NewFromFloat(v).Mul(decimal.NewFromFloat(m)).Round(places).InexactFloat64()
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
