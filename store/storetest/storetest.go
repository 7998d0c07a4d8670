// Package storetest opens throwaway SQLite databases seeded with a small menu fixture.
package storetest

import (
	"path/filepath"
	"testing"

	"restaurant-menu-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated, empty database that lives for the duration of the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// Seeded returns a database holding the fixture below.
//
//	rest_1 Taqueria (active)        menu_1 Lunch: item_1 Burrito, item_2 Old Nachos (inactive), item_3 Taco
//	                                menu_2 Dinner: item_4 Bowl
//	rest_2 Closed Diner (inactive)  menu_3 Classic: item_5 Diner Burger
//	rest_3 Noodle Bar (active)      menu_4 Retired (inactive): item_6 Ramen
//
// Burrito carries opt_1 Protein and opt_2 Salsa, Bowl carries opt_1. opt_3 "Protein Add-on"
// also matches "protein" but has a higher id.
func Seeded(t testing.TB) *gorm.DB {
	t.Helper()
	db := NewDB(t)
	Insert(t, db, Fixture()...)
	return db
}

// Insert creates every row in order and fails the test on the first error.
func Insert(t testing.TB, db *gorm.DB, rows ...any) {
	t.Helper()
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("insert %T: %v", row, err)
		}
	}
}

func f(v float64) *float64 { return &v }

func s(v string) *string { return &v }

// Fixture returns the seed rows. Rows are deliberately not in id order.
func Fixture() []any {
	return []any{
		&models.Restaurant{ID: "rest_2", Name: "Closed Diner", IsActive: false},
		&models.Restaurant{ID: "rest_1", Name: "Taqueria", Description: "Tacos and bowls", Phone: "555-0100", IsActive: true},
		&models.Restaurant{ID: "rest_3", Name: "Noodle Bar", IsActive: true},

		&models.Menu{ID: "menu_2", RestaurantID: "rest_1", Name: "Dinner", IsActive: true},
		&models.Menu{ID: "menu_1", RestaurantID: "rest_1", Name: "Lunch", IsActive: true},
		&models.Menu{ID: "menu_3", RestaurantID: "rest_2", Name: "Classic", IsActive: true},
		&models.Menu{ID: "menu_4", RestaurantID: "rest_3", Name: "Retired", IsActive: false},

		&models.MenuItem{ID: "item_3", MenuID: "menu_1", DisplayName: "Taco", BasePrice: 3.5, IsAvailable: true, IsActive: true},
		&models.MenuItem{ID: "item_1", MenuID: "menu_1", DisplayName: "Burrito", ShortName: "Burr", Description: "Flour tortilla with rice", BasePrice: 9.25, IsAvailable: true, IsCustomizable: true, IsActive: true},
		&models.MenuItem{ID: "item_2", MenuID: "menu_1", DisplayName: "Old Nachos", BasePrice: 6, IsActive: false},
		&models.MenuItem{ID: "item_4", MenuID: "menu_2", DisplayName: "Bowl", BasePrice: 10, IsAvailable: true, IsCustomizable: true, IsActive: true},
		&models.MenuItem{ID: "item_5", MenuID: "menu_3", DisplayName: "Diner Burger", BasePrice: 8, IsAvailable: true, IsActive: true},
		&models.MenuItem{ID: "item_6", MenuID: "menu_4", DisplayName: "Ramen", BasePrice: 12, IsAvailable: true, IsActive: true},

		&models.Nutrition{MenuItemID: s("item_1"), Calories: f(520), ProteinG: f(18.5), SodiumMg: f(900), IsVerified: true},

		&models.CustomOption{ID: "opt_3", Name: "Protein Add-on", Type: "single"},
		&models.CustomOption{ID: "opt_1", Name: "Protein", Description: "Choose your protein", Type: "single"},
		&models.CustomOption{ID: "opt_2", Name: "Salsa", Type: "single"},

		&models.MenuItemCustomization{MenuItemID: "item_1", CustomOptionID: "opt_1"},
		&models.MenuItemCustomization{MenuItemID: "item_1", CustomOptionID: "opt_2"},
		&models.MenuItemCustomization{MenuItemID: "item_4", CustomOptionID: "opt_1"},
		&models.MenuItemCustomization{MenuItemID: "item_2", CustomOptionID: "opt_1"},

		&models.OptionValue{ID: "val_1", CustomOptionID: "opt_1", Name: "Chicken", DefaultPortion: "single"},
		&models.OptionValue{ID: "val_2", CustomOptionID: "opt_1", Name: "Tofu", DefaultPortion: "single"},
		&models.OptionValue{ID: "val_3", CustomOptionID: "opt_1", Name: "Steak", DefaultPortion: "single"},
		&models.OptionValue{ID: "val_4", CustomOptionID: "opt_1", Name: "Black Beans", DefaultPortion: "single"},
		&models.OptionValue{ID: "val_6", CustomOptionID: "opt_2", Name: "Mild"},
		&models.OptionValue{ID: "val_7", CustomOptionID: "opt_2", Name: "Hot"},
		&models.OptionValue{ID: "val_8", CustomOptionID: "opt_3", Name: "Egg"},

		&models.Nutrition{OptionValueID: s("val_1"), Calories: f(180), ProteinG: f(30), FatG: f(7), SodiumMg: f(310), CholesterolMg: f(115)},
		&models.Nutrition{OptionValueID: s("val_2"), Calories: f(150), ProteinG: f(12), FatG: f(9.5), SodiumMg: f(555)},
		&models.Nutrition{OptionValueID: s("val_3"), Calories: f(150), ProteinG: f(32), FatG: f(6), SodiumMg: f(330), CholesterolMg: f(65)},

		&models.Diet{ID: "diet_1", Name: "Vegan"},
		&models.Diet{ID: "diet_2", Name: "Gluten Free"},
		&models.OptionValueDiet{OptionValueID: "val_2", DietID: "diet_1"},
		&models.OptionValueDiet{OptionValueID: "val_4", DietID: "diet_1"},
		&models.OptionValueDiet{OptionValueID: "val_4", DietID: "diet_2"},
		&models.OptionValueDiet{OptionValueID: "val_1", DietID: "diet_2"},

		&models.Portion{ID: "por_1", CustomOptionID: "opt_1", PortionType: "single"},
		&models.Portion{ID: "por_2", CustomOptionID: "opt_1", PortionType: "double"},
		&models.Portion{ID: "por_3", CustomOptionID: "opt_1", PortionType: "light", Multiplier: f(0.75)},

		&models.Ingredient{ID: "ing_1", Name: "Flour Tortilla", PossibleAllergens: "wheat, gluten"},
		&models.Ingredient{ID: "ing_2", Name: "Chicken Thigh", ContainsPoultry: true, ContainsMeat: true, IsAnimalProduct: true},
		&models.Ingredient{ID: "ing_3", Name: "Tofu", PossibleAllergens: "soy"},
		&models.Ingredient{ID: "ing_4", Name: "Beef", ContainsMeat: true, IsAnimalProduct: true},
		&models.Ingredient{ID: "ing_5", Name: "Black Beans"},
		&models.Ingredient{ID: "ing_6", Name: "Cheese", ContainsDairy: true, IsAnimalProduct: true, PossibleAllergens: "milk"},
		&models.Ingredient{ID: "ing_7", Name: "Chipotle Marinade", PossibleAllergens: "soy"},

		&models.Allergen{ID: "all_1", Name: "Soy"},
		&models.Allergen{ID: "all_2", Name: "Wheat"},
		&models.Allergen{ID: "all_3", Name: "Milk"},

		&models.IngredientAllergen{IngredientID: "ing_1", AllergenID: "all_2"},
		&models.IngredientAllergen{IngredientID: "ing_3", AllergenID: "all_1"},
		&models.IngredientAllergen{IngredientID: "ing_7", AllergenID: "all_1"},
		&models.IngredientAllergen{IngredientID: "ing_6", AllergenID: "all_3"},

		&models.MenuItemIngredient{MenuItemID: "item_1", IngredientID: "ing_6"},
		&models.MenuItemIngredient{MenuItemID: "item_1", IngredientID: "ing_1"},

		&models.OptionValueIngredient{OptionValueID: "val_1", IngredientID: "ing_2"},
		&models.OptionValueIngredient{OptionValueID: "val_1", IngredientID: "ing_7"},
		&models.OptionValueIngredient{OptionValueID: "val_2", IngredientID: "ing_3"},
		&models.OptionValueIngredient{OptionValueID: "val_3", IngredientID: "ing_4"},
		&models.OptionValueIngredient{OptionValueID: "val_3", IngredientID: "ing_7"},
		&models.OptionValueIngredient{OptionValueID: "val_4", IngredientID: "ing_5"},
	}
}
