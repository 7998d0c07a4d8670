package services

import (
	"context"
	"strings"

	"restaurant-menu-api/apperr"
	"restaurant-menu-api/models"
	"restaurant-menu-api/nutrition"
	"restaurant-menu-api/store"

	"go.uber.org/zap"
)

// MenuConfig carries the behaviour that differed between deployments.
type MenuConfig struct {
	Tree            TreeOptions
	HardDeleteItems bool
}

type MenuService struct {
	gw     store.Gateway
	cfg    MenuConfig
	logger *zap.SugaredLogger
}

func NewMenuService(gw store.Gateway, cfg MenuConfig, logger *zap.SugaredLogger) *MenuService {
	return &MenuService{gw: gw, cfg: cfg, logger: logger}
}

// Tree loads every restaurant with its menus and active items.
func (s *MenuService) Tree(ctx context.Context) ([]RestaurantNode, error) {
	restaurants, err := s.gw.ListRestaurants(ctx, s.cfg.Tree.ActiveRestaurantsOnly)
	if err != nil {
		return nil, err
	}
	restaurantIDs := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		restaurantIDs = append(restaurantIDs, r.ID)
	}

	menus, err := s.gw.ListMenus(ctx, restaurantIDs, s.cfg.Tree.ActiveMenusOnly)
	if err != nil {
		return nil, err
	}
	menuIDs := make([]string, 0, len(menus))
	for _, m := range menus {
		menuIDs = append(menuIDs, m.ID)
	}

	items, err := s.gw.ListMenuItems(ctx, menuIDs, true)
	if err != nil {
		return nil, err
	}
	return AssembleMenuTree(restaurants, menus, items, s.cfg.Tree), nil
}

// ── Menu items ──────────────────────────────────────────────────────────────

type CreateMenuItemInput struct {
	MenuID         string
	RestaurantID   string
	DisplayName    string
	ShortName      string
	Description    string
	BasePrice      *float64
	PortionSize    string
	MealType       string
	IsAvailable    *bool
	IsCustomizable bool
}

// CreateMenuItem inserts an item into MenuID, or into the first active menu of RestaurantID.
func (s *MenuService) CreateMenuItem(ctx context.Context, in CreateMenuItemInput) (*models.MenuItem, error) {
	if strings.TrimSpace(in.DisplayName) == "" {
		return nil, apperr.Validation("display_name is required")
	}
	if in.BasePrice == nil {
		return nil, apperr.Validation("base_price is required")
	}
	if *in.BasePrice < 0 {
		return nil, apperr.Validation("base_price must not be negative")
	}
	if in.MenuID == "" && in.RestaurantID == "" {
		return nil, apperr.Validation("menu_id or restaurant_id is required")
	}

	var menu *models.Menu
	var err error
	if in.MenuID != "" {
		menu, err = s.gw.GetMenu(ctx, in.MenuID)
	} else {
		menu, err = s.gw.FirstActiveMenu(ctx, in.RestaurantID)
	}
	if err != nil {
		return nil, err
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	item := &models.MenuItem{
		ID:             NewID("item"),
		MenuID:         menu.ID,
		DisplayName:    strings.TrimSpace(in.DisplayName),
		ShortName:      in.ShortName,
		Description:    in.Description,
		BasePrice:      *in.BasePrice,
		PortionSize:    in.PortionSize,
		MealType:       in.MealType,
		IsAvailable:    available,
		IsCustomizable: in.IsCustomizable,
		IsActive:       true,
	}
	if err := s.gw.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	s.logger.Infow("menu item created", "item_id", item.ID, "menu_id", item.MenuID)
	return item, nil
}

// GetMenuItem returns the item even when it has been soft-deleted.
func (s *MenuService) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.gw.GetMenuItem(ctx, id)
}

var menuItemPatchable = map[string]fieldKind{
	"menu_id":         stringField,
	"display_name":    stringField,
	"short_name":      stringField,
	"description":     stringField,
	"base_price":      numberField,
	"portion_size":    stringField,
	"meal_type":       stringField,
	"is_available":    boolField,
	"is_customizable": boolField,
	"is_active":       boolField,
}

// UpdateMenuItem applies only the whitelisted fields present in patch.
func (s *MenuService) UpdateMenuItem(ctx context.Context, id string, patch map[string]any) (*models.MenuItem, error) {
	fields, err := checkPatch(menuItemPatchable, patch)
	if err != nil {
		return nil, err
	}
	if price, ok := fields["base_price"].(float64); ok && price < 0 {
		return nil, apperr.Validation("base_price must be a non-negative number")
	}
	if name, ok := fields["display_name"].(string); ok && strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("display_name must not be empty")
	}
	if menuID, ok := fields["menu_id"].(string); ok {
		if _, err := s.gw.GetMenu(ctx, menuID); err != nil {
			return nil, err
		}
	}

	item, err := s.gw.UpdateMenuItem(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("menu item updated", "item_id", id, "fields", len(fields))
	return item, nil
}

// DeleteMenuItem flips is_active off unless hard deletes are enabled.
func (s *MenuService) DeleteMenuItem(ctx context.Context, id string) error {
	if s.cfg.HardDeleteItems {
		if err := s.gw.DeleteMenuItem(ctx, id); err != nil {
			return err
		}
		s.logger.Infow("menu item deleted", "item_id", id, "hard", true)
		return nil
	}
	if _, err := s.gw.UpdateMenuItem(ctx, id, map[string]any{"is_active": false}); err != nil {
		return err
	}
	s.logger.Infow("menu item deleted", "item_id", id, "hard", false)
	return nil
}

type ItemNutrition struct {
	MenuItemID string `json:"menu_item_id"`
	nutrition.Facts
	IsVerified bool `json:"is_verified"`
	HasRecord  bool `json:"has_record"`
}

// ItemNutrition returns the item's nutrition, zero-filled when no record exists.
func (s *MenuService) ItemNutrition(ctx context.Context, itemID string) (*ItemNutrition, error) {
	if _, err := s.gw.GetMenuItem(ctx, itemID); err != nil {
		return nil, err
	}
	n, err := s.gw.ItemNutrition(ctx, itemID)
	if err != nil {
		return nil, err
	}
	out := &ItemNutrition{MenuItemID: itemID, Facts: nutrition.FromModel(n)}
	if n != nil {
		out.IsVerified = n.IsVerified
		out.HasRecord = true
	}
	return out, nil
}

// ── Restaurants ─────────────────────────────────────────────────────────────

type CreateRestaurantInput struct {
	Name         string
	Description  string
	Phone        string
	Website      string
	Status       string
	DiningStatus string
}

func (s *MenuService) CreateRestaurant(ctx context.Context, in CreateRestaurantInput) (*models.Restaurant, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	restaurant := &models.Restaurant{
		ID:           NewID("rest"),
		Name:         name,
		Description:  in.Description,
		Phone:        in.Phone,
		Website:      in.Website,
		Status:       in.Status,
		DiningStatus: in.DiningStatus,
		IsActive:     true,
	}
	if err := s.gw.CreateRestaurant(ctx, restaurant); err != nil {
		return nil, err
	}
	s.logger.Infow("restaurant created", "restaurant_id", restaurant.ID)
	return restaurant, nil
}

func (s *MenuService) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.gw.ListRestaurants(ctx, true)
}

func (s *MenuService) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	return s.gw.GetRestaurant(ctx, id)
}

var restaurantPatchable = map[string]fieldKind{
	"name":          stringField,
	"description":   stringField,
	"phone":         stringField,
	"website":       stringField,
	"status":        stringField,
	"dining_status": stringField,
	"is_active":     boolField,
}

func (s *MenuService) UpdateRestaurant(ctx context.Context, id string, patch map[string]any) (*models.Restaurant, error) {
	fields, err := checkPatch(restaurantPatchable, patch)
	if err != nil {
		return nil, err
	}
	if name, ok := fields["name"].(string); ok && strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("name must not be empty")
	}
	restaurant, err := s.gw.UpdateRestaurant(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("restaurant updated", "restaurant_id", id, "fields", len(fields))
	return restaurant, nil
}

// DeleteRestaurant is always a soft delete.
func (s *MenuService) DeleteRestaurant(ctx context.Context, id string) error {
	if _, err := s.gw.UpdateRestaurant(ctx, id, map[string]any{"is_active": false}); err != nil {
		return err
	}
	s.logger.Infow("restaurant deleted", "restaurant_id", id)
	return nil
}
