package models

import "time"

// Nutrition is attached to either a menu item or an option value, never both.
// Every measurement is nullable in the schema.
type Nutrition struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	MenuItemID    *string   `json:"menu_item_id" gorm:"index"`
	OptionValueID *string   `json:"option_value_id" gorm:"index"`
	Calories      *float64  `json:"calories"`
	ProteinG      *float64  `json:"protein_g"`
	FatG          *float64  `json:"fat_g"`
	SaturatedFatG *float64  `json:"saturated_fat_g"`
	CarbohydrateG *float64  `json:"carbohydrate_g"`
	SugarG        *float64  `json:"sugar_g"`
	FiberG        *float64  `json:"fiber_g"`
	SodiumMg      *float64  `json:"sodium_mg"`
	CholesterolMg *float64  `json:"cholesterol_mg"`
	IsVerified    bool      `json:"is_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Nutrition) TableName() string {
	return "nutrition"
}

type CustomOption struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type MenuItemCustomization struct {
	MenuItemID     string `json:"menu_item_id" gorm:"primaryKey"`
	CustomOptionID string `json:"custom_option_id" gorm:"primaryKey"`
}

type OptionValue struct {
	ID             string `json:"id" gorm:"primaryKey"`
	CustomOptionID string `json:"custom_option_id" gorm:"not null;index"`
	Name           string `json:"name" gorm:"not null"`
	DefaultPortion string `json:"default_portion"`
}

type Diet struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

type OptionValueDiet struct {
	OptionValueID string `json:"option_value_id" gorm:"primaryKey"`
	DietID        string `json:"diet_id" gorm:"primaryKey"`
}

// Portion scales an option's nutrition. A nil Multiplier falls back to the portion type table.
type Portion struct {
	ID             string   `json:"id" gorm:"primaryKey"`
	CustomOptionID string   `json:"custom_option_id" gorm:"not null;index"`
	PortionType    string   `json:"portion_type"`
	Multiplier     *float64 `json:"multiplier"`
}
