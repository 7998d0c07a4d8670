package services

import (
	"context"
	"testing"

	"restaurant-menu-api/apperr"
	"restaurant-menu-api/models"
	"restaurant-menu-api/store"
	"restaurant-menu-api/store/storetest"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fixedPick always selects index p, clamped to the slice.
type fixedPick int

func (p fixedPick) IntN(n int) int {
	if int(p) >= n {
		return n - 1
	}
	return int(p)
}

var nopLogger = zap.NewNop().Sugar()

func seededGateway(t *testing.T) (*store.GormGateway, *gorm.DB) {
	t.Helper()
	db := storetest.Seeded(t)
	return store.NewGormGateway(db), db
}

// brokenGateway fails every restaurant listing as if the database were down.
type brokenGateway struct {
	store.Gateway
}

func (brokenGateway) ListRestaurants(context.Context, bool) ([]models.Restaurant, error) {
	return nil, apperr.Upstream("failed to list restaurants", context.DeadlineExceeded)
}
