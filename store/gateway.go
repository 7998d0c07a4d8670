package store

import (
	"context"

	"restaurant-menu-api/models"
)

// Gateway is the relational store as seen by the services. Every call is its own
// atomic unit; nothing spans a transaction. Not-found lookups return an error
// matching apperr.ErrNotFound, every other failure matches apperr.ErrUpstreamQuery.
type Gateway interface {
	ListRestaurants(ctx context.Context, activeOnly bool) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error)
	CreateRestaurant(ctx context.Context, r *models.Restaurant) error
	UpdateRestaurant(ctx context.Context, id string, fields map[string]any) (*models.Restaurant, error)

	ListMenus(ctx context.Context, restaurantIDs []string, activeOnly bool) ([]models.Menu, error)
	GetMenu(ctx context.Context, id string) (*models.Menu, error)
	FirstActiveMenu(ctx context.Context, restaurantID string) (*models.Menu, error)

	ListMenuItems(ctx context.Context, menuIDs []string, activeOnly bool) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *models.MenuItem) error
	UpdateMenuItem(ctx context.Context, id string, fields map[string]any) (*models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
	ItemNutrition(ctx context.Context, itemID string) (*models.Nutrition, error)

	FindOptionsByName(ctx context.Context, fragment string) ([]models.CustomOption, error)
	ItemCustomizations(ctx context.Context, itemID string) ([]models.CustomOption, error)
	ItemsWithOption(ctx context.Context, optionID string) ([]models.MenuItem, error)
	ListOptionValues(ctx context.Context, optionIDs []string) ([]models.OptionValue, error)
	ValueNutrition(ctx context.Context, valueIDs []string) (map[string]*models.Nutrition, error)
	ValueDietNames(ctx context.Context, valueIDs []string) (map[string][]string, error)
	ListPortions(ctx context.Context, optionID string) ([]models.Portion, error)

	GetAllergen(ctx context.Context, id string) (*models.Allergen, error)
	ItemIngredientIDs(ctx context.Context, itemID string) ([]string, error)
	ValueIngredientIDs(ctx context.Context, valueIDs []string) (map[string][]string, error)
	IngredientsWithAllergen(ctx context.Context, allergenID string, ingredientIDs []string) ([]models.Ingredient, error)
	AllergenIngredientIDs(ctx context.Context, allergenID string) ([]string, error)
}
