package models

type Ingredient struct {
	ID                string `json:"id" gorm:"primaryKey"`
	Name              string `json:"name" gorm:"not null"`
	ContainsMeat      bool   `json:"contains_meat"`
	ContainsDairy     bool   `json:"contains_dairy"`
	ContainsEgg       bool   `json:"contains_egg"`
	ContainsFish      bool   `json:"contains_fish"`
	ContainsShellfish bool   `json:"contains_shellfish"`
	ContainsPoultry   bool   `json:"contains_poultry"`
	ContainsHoney     bool   `json:"contains_honey"`
	IsAnimalProduct   bool   `json:"is_animal_product"`
	PossibleAllergens string `json:"possible_allergens"`
}

type Allergen struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

type MenuItemIngredient struct {
	MenuItemID   string `json:"menu_item_id" gorm:"primaryKey"`
	IngredientID string `json:"ingredient_id" gorm:"primaryKey"`
}

type OptionValueIngredient struct {
	OptionValueID string `json:"option_value_id" gorm:"primaryKey"`
	IngredientID  string `json:"ingredient_id" gorm:"primaryKey"`
}

type IngredientAllergen struct {
	IngredientID string `json:"ingredient_id" gorm:"primaryKey"`
	AllergenID   string `json:"allergen_id" gorm:"primaryKey"`
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&Restaurant{}, &Menu{}, &MenuItem{},
		&CustomOption{}, &MenuItemCustomization{}, &OptionValue{}, &Nutrition{},
		&Diet{}, &OptionValueDiet{}, &Portion{},
		&Ingredient{}, &Allergen{},
		&MenuItemIngredient{}, &OptionValueIngredient{}, &IngredientAllergen{},
	}
}
