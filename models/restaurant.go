package models

import "time"

type Restaurant struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Phone        string    `json:"phone"`
	Website      string    `json:"website"`
	Status       string    `json:"status"`
	DiningStatus string    `json:"dining_status"`
	IsActive     bool      `json:"is_active" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Menu belongs to exactly one restaurant through RestaurantID; there is no junction table.
type Menu struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	RestaurantID string    `json:"restaurant_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	IsActive     bool      `json:"is_active" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MenuItem struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	MenuID         string    `json:"menu_id" gorm:"not null;index"`
	DisplayName    string    `json:"display_name" gorm:"not null"`
	ShortName      string    `json:"short_name"`
	Description    string    `json:"description"`
	BasePrice      float64   `json:"base_price" gorm:"not null"`
	PortionSize    string    `json:"portion_size"`
	MealType       string    `json:"meal_type"`
	IsAvailable    bool      `json:"is_available" gorm:"not null"`
	IsCustomizable bool      `json:"is_customizable" gorm:"not null"`
	IsActive       bool      `json:"is_active" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
