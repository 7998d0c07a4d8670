package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"restaurant-menu-api/apperr"
	"restaurant-menu-api/models"

	"gorm.io/gorm"
)

// GormGateway implements Gateway on top of a shared *gorm.DB pool.
type GormGateway struct {
	db *gorm.DB
}

func NewGormGateway(db *gorm.DB) *GormGateway {
	return &GormGateway{db: db}
}

// Ping checks that the underlying connection pool can reach the database.
func (g *GormGateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return apperr.Upstream("database handle unavailable", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return apperr.Upstream("database unreachable", err)
	}
	return nil
}

func queryErr(what string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(what + " not found")
	}
	return apperr.Upstream("failed to query "+what, err)
}

// ── Restaurants ─────────────────────────────────────────────────────────────

func (g *GormGateway) ListRestaurants(ctx context.Context, activeOnly bool) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	query := g.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("id ASC").Find(&restaurants).Error; err != nil {
		return nil, queryErr("restaurants", err)
	}
	return restaurants, nil
}

func (g *GormGateway) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error; err != nil {
		return nil, queryErr("restaurant", err)
	}
	return &restaurant, nil
}

func (g *GormGateway) CreateRestaurant(ctx context.Context, r *models.Restaurant) error {
	if err := g.db.WithContext(ctx).Create(r).Error; err != nil {
		return apperr.Upstream("failed to create restaurant", err)
	}
	return nil
}

func (g *GormGateway) UpdateRestaurant(ctx context.Context, id string, fields map[string]any) (*models.Restaurant, error) {
	restaurant, err := g.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	fields["updated_at"] = time.Now()
	if err := g.db.WithContext(ctx).Model(restaurant).Updates(fields).Error; err != nil {
		return nil, apperr.Upstream("failed to update restaurant", err)
	}
	return g.GetRestaurant(ctx, id)
}

// ── Menus ───────────────────────────────────────────────────────────────────

func (g *GormGateway) ListMenus(ctx context.Context, restaurantIDs []string, activeOnly bool) ([]models.Menu, error) {
	if len(restaurantIDs) == 0 {
		return nil, nil
	}
	var menus []models.Menu
	query := g.db.WithContext(ctx).Where("restaurant_id IN ?", restaurantIDs)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("id ASC").Find(&menus).Error; err != nil {
		return nil, queryErr("menus", err)
	}
	return menus, nil
}

func (g *GormGateway) GetMenu(ctx context.Context, id string) (*models.Menu, error) {
	var menu models.Menu
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&menu).Error; err != nil {
		return nil, queryErr("menu", err)
	}
	return &menu, nil
}

func (g *GormGateway) FirstActiveMenu(ctx context.Context, restaurantID string) (*models.Menu, error) {
	var menu models.Menu
	err := g.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_active = ?", restaurantID, true).
		Order("id ASC").
		First(&menu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no active menu found for restaurant")
		}
		return nil, queryErr("menu", err)
	}
	return &menu, nil
}

// ── Menu items ──────────────────────────────────────────────────────────────

func (g *GormGateway) ListMenuItems(ctx context.Context, menuIDs []string, activeOnly bool) ([]models.MenuItem, error) {
	if len(menuIDs) == 0 {
		return nil, nil
	}
	var items []models.MenuItem
	query := g.db.WithContext(ctx).Where("menu_id IN ?", menuIDs)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("id ASC").Find(&items).Error; err != nil {
		return nil, queryErr("menu items", err)
	}
	return items, nil
}

func (g *GormGateway) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, queryErr("menu item", err)
	}
	return &item, nil
}

func (g *GormGateway) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	if err := g.db.WithContext(ctx).Create(item).Error; err != nil {
		return apperr.Upstream("failed to create menu item", err)
	}
	return nil
}

func (g *GormGateway) UpdateMenuItem(ctx context.Context, id string, fields map[string]any) (*models.MenuItem, error) {
	item, err := g.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	fields["updated_at"] = time.Now()
	if err := g.db.WithContext(ctx).Model(item).Updates(fields).Error; err != nil {
		return nil, apperr.Upstream("failed to update menu item", err)
	}
	return g.GetMenuItem(ctx, id)
}

// DeleteMenuItem removes the item together with its nutrition, customization and ingredient rows.
func (g *GormGateway) DeleteMenuItem(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.MenuItem{})
		if result.Error != nil {
			return apperr.Upstream("failed to delete menu item", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("menu item not found")
		}
		links := []any{&models.Nutrition{}, &models.MenuItemCustomization{}, &models.MenuItemIngredient{}}
		for _, link := range links {
			if err := tx.Where("menu_item_id = ?", id).Delete(link).Error; err != nil {
				return apperr.Upstream("failed to delete menu item links", err)
			}
		}
		return nil
	})
}

// ItemNutrition returns nil without error when the item has no nutrition record.
func (g *GormGateway) ItemNutrition(ctx context.Context, itemID string) (*models.Nutrition, error) {
	var n models.Nutrition
	err := g.db.WithContext(ctx).Where("menu_item_id = ?", itemID).Order("id ASC").First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, queryErr("nutrition", err)
	}
	return &n, nil
}

// ── Customizations ──────────────────────────────────────────────────────────

// FindOptionsByName matches option names case-insensitively by substring, lowest id first.
func (g *GormGateway) FindOptionsByName(ctx context.Context, fragment string) ([]models.CustomOption, error) {
	var options []models.CustomOption
	err := g.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(fragment)+"%").
		Order("id ASC").
		Find(&options).Error
	if err != nil {
		return nil, queryErr("custom options", err)
	}
	return options, nil
}

func (g *GormGateway) ItemCustomizations(ctx context.Context, itemID string) ([]models.CustomOption, error) {
	var options []models.CustomOption
	err := g.db.WithContext(ctx).
		Model(&models.CustomOption{}).
		Select("custom_options.*").
		Joins("JOIN menu_item_customizations ON menu_item_customizations.custom_option_id = custom_options.id").
		Where("menu_item_customizations.menu_item_id = ?", itemID).
		Order("custom_options.id ASC").
		Find(&options).Error
	if err != nil {
		return nil, queryErr("item customizations", err)
	}
	return options, nil
}

func (g *GormGateway) ItemsWithOption(ctx context.Context, optionID string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := g.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Select("menu_items.*").
		Joins("JOIN menu_item_customizations ON menu_item_customizations.menu_item_id = menu_items.id").
		Where("menu_item_customizations.custom_option_id = ? AND menu_items.is_active = ?", optionID, true).
		Order("menu_items.id ASC").
		Find(&items).Error
	if err != nil {
		return nil, queryErr("menu items", err)
	}
	return items, nil
}

// ListOptionValues returns values grouped by option, each group ascending by id.
func (g *GormGateway) ListOptionValues(ctx context.Context, optionIDs []string) ([]models.OptionValue, error) {
	if len(optionIDs) == 0 {
		return nil, nil
	}
	var values []models.OptionValue
	err := g.db.WithContext(ctx).
		Where("custom_option_id IN ?", optionIDs).
		Order("custom_option_id ASC").
		Order("id ASC").
		Find(&values).Error
	if err != nil {
		return nil, queryErr("option values", err)
	}
	return values, nil
}

// ValueNutrition keys the lowest-id nutrition record of each value by value id.
func (g *GormGateway) ValueNutrition(ctx context.Context, valueIDs []string) (map[string]*models.Nutrition, error) {
	out := make(map[string]*models.Nutrition, len(valueIDs))
	if len(valueIDs) == 0 {
		return out, nil
	}
	var rows []models.Nutrition
	err := g.db.WithContext(ctx).
		Where("option_value_id IN ?", valueIDs).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, queryErr("option value nutrition", err)
	}
	for i := range rows {
		key := *rows[i].OptionValueID
		if _, seen := out[key]; !seen {
			out[key] = &rows[i]
		}
	}
	return out, nil
}

func (g *GormGateway) ValueDietNames(ctx context.Context, valueIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(valueIDs))
	if len(valueIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		OptionValueID string
		Name          string
	}
	err := g.db.WithContext(ctx).
		Table("option_value_diets").
		Select("option_value_diets.option_value_id, diets.name").
		Joins("JOIN diets ON diets.id = option_value_diets.diet_id").
		Where("option_value_diets.option_value_id IN ?", valueIDs).
		Order("option_value_diets.option_value_id ASC").
		Order("diets.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, queryErr("option value diets", err)
	}
	for _, row := range rows {
		out[row.OptionValueID] = append(out[row.OptionValueID], row.Name)
	}
	return out, nil
}

func (g *GormGateway) ListPortions(ctx context.Context, optionID string) ([]models.Portion, error) {
	var portions []models.Portion
	err := g.db.WithContext(ctx).
		Where("custom_option_id = ?", optionID).
		Order("id ASC").
		Find(&portions).Error
	if err != nil {
		return nil, queryErr("portions", err)
	}
	return portions, nil
}

// ── Ingredients & allergens ─────────────────────────────────────────────────

func (g *GormGateway) GetAllergen(ctx context.Context, id string) (*models.Allergen, error) {
	var allergen models.Allergen
	if err := g.db.WithContext(ctx).Where("id = ?", id).First(&allergen).Error; err != nil {
		return nil, queryErr("allergen", err)
	}
	return &allergen, nil
}

func (g *GormGateway) ItemIngredientIDs(ctx context.Context, itemID string) ([]string, error) {
	var ids []string
	err := g.db.WithContext(ctx).
		Model(&models.MenuItemIngredient{}).
		Where("menu_item_id = ?", itemID).
		Order("ingredient_id ASC").
		Pluck("ingredient_id", &ids).Error
	if err != nil {
		return nil, queryErr("item ingredients", err)
	}
	return ids, nil
}

func (g *GormGateway) ValueIngredientIDs(ctx context.Context, valueIDs []string) (map[string][]string, error) {
	out := make(map[string][]string, len(valueIDs))
	if len(valueIDs) == 0 {
		return out, nil
	}
	var rows []models.OptionValueIngredient
	err := g.db.WithContext(ctx).
		Where("option_value_id IN ?", valueIDs).
		Order("option_value_id ASC").
		Order("ingredient_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, queryErr("option value ingredients", err)
	}
	for _, row := range rows {
		out[row.OptionValueID] = append(out[row.OptionValueID], row.IngredientID)
	}
	return out, nil
}

// IngredientsWithAllergen keeps only the given ingredients linked to the allergen.
func (g *GormGateway) IngredientsWithAllergen(ctx context.Context, allergenID string, ingredientIDs []string) ([]models.Ingredient, error) {
	if len(ingredientIDs) == 0 {
		return nil, nil
	}
	var ingredients []models.Ingredient
	err := g.db.WithContext(ctx).
		Model(&models.Ingredient{}).
		Select("ingredients.*").
		Joins("JOIN ingredient_allergens ON ingredient_allergens.ingredient_id = ingredients.id").
		Where("ingredient_allergens.allergen_id = ? AND ingredients.id IN ?", allergenID, ingredientIDs).
		Order("ingredients.id ASC").
		Find(&ingredients).Error
	if err != nil {
		return nil, queryErr("allergen ingredients", err)
	}
	return ingredients, nil
}

func (g *GormGateway) AllergenIngredientIDs(ctx context.Context, allergenID string) ([]string, error) {
	var ids []string
	err := g.db.WithContext(ctx).
		Model(&models.IngredientAllergen{}).
		Where("allergen_id = ?", allergenID).
		Order("ingredient_id ASC").
		Pluck("ingredient_id", &ids).Error
	if err != nil {
		return nil, queryErr("allergen ingredients", err)
	}
	return ids, nil
}

var _ Gateway = (*GormGateway)(nil)
