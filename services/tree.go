package services

import (
	"cmp"
	"slices"

	"restaurant-menu-api/models"
)

// MenuItemLeaf is the fixed projection of a menu item inside the menu tree.
type MenuItemLeaf struct {
	ID             string  `json:"id"`
	DisplayName    string  `json:"display_name"`
	ShortName      string  `json:"short_name"`
	Description    string  `json:"description"`
	BasePrice      float64 `json:"base_price"`
	PortionSize    string  `json:"portion_size"`
	MealType       string  `json:"meal_type"`
	IsAvailable    bool    `json:"is_available"`
	IsCustomizable bool    `json:"is_customizable"`
}

type MenuNode struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	MenuItems []MenuItemLeaf `json:"menu_items"`
}

type RestaurantNode struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Phone        string     `json:"phone"`
	Website      string     `json:"website"`
	Status       string     `json:"status"`
	DiningStatus string     `json:"dining_status"`
	Menus        []MenuNode `json:"menus"`
}

// TreeOptions controls restaurant and menu activity filtering. Inactive items are always dropped.
type TreeOptions struct {
	ActiveRestaurantsOnly bool
	ActiveMenusOnly       bool
}

func leafOf(it models.MenuItem) MenuItemLeaf {
	return MenuItemLeaf{
		ID:             it.ID,
		DisplayName:    it.DisplayName,
		ShortName:      it.ShortName,
		Description:    it.Description,
		BasePrice:      it.BasePrice,
		PortionSize:    it.PortionSize,
		MealType:       it.MealType,
		IsAvailable:    it.IsAvailable,
		IsCustomizable: it.IsCustomizable,
	}
}

// AssembleMenuTree nests flat rows into restaurants → menus → items, ascending by id at
// every level. Menus and items whose parent is absent from the input are dropped.
func AssembleMenuTree(restaurants []models.Restaurant, menus []models.Menu, items []models.MenuItem, opts TreeOptions) []RestaurantNode {
	restaurants = slices.Clone(restaurants)
	menus = slices.Clone(menus)
	items = slices.Clone(items)
	slices.SortStableFunc(restaurants, func(a, b models.Restaurant) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortStableFunc(menus, func(a, b models.Menu) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortStableFunc(items, func(a, b models.MenuItem) int { return cmp.Compare(a.ID, b.ID) })

	itemsByMenu := make(map[string][]MenuItemLeaf)
	for _, it := range items {
		if !it.IsActive {
			continue
		}
		itemsByMenu[it.MenuID] = append(itemsByMenu[it.MenuID], leafOf(it))
	}

	menusByRestaurant := make(map[string][]MenuNode)
	for _, m := range menus {
		if opts.ActiveMenusOnly && !m.IsActive {
			continue
		}
		leaves := itemsByMenu[m.ID]
		if leaves == nil {
			leaves = []MenuItemLeaf{}
		}
		menusByRestaurant[m.RestaurantID] = append(menusByRestaurant[m.RestaurantID], MenuNode{
			ID:        m.ID,
			Name:      m.Name,
			MenuItems: leaves,
		})
	}

	tree := make([]RestaurantNode, 0, len(restaurants))
	for _, r := range restaurants {
		if opts.ActiveRestaurantsOnly && !r.IsActive {
			continue
		}
		nodes := menusByRestaurant[r.ID]
		if nodes == nil {
			nodes = []MenuNode{}
		}
		tree = append(tree, RestaurantNode{
			ID:           r.ID,
			Name:         r.Name,
			Description:  r.Description,
			Phone:        r.Phone,
			Website:      r.Website,
			Status:       r.Status,
			DiningStatus: r.DiningStatus,
			Menus:        nodes,
		})
	}
	return tree
}
