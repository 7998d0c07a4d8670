package handlers

import (
	"context"

	"restaurant-menu-api/services"

	"go.uber.org/zap"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Services struct {
	Menus          *services.MenuService
	Customizations *services.CustomizationService
	Allergens      *services.AllergenService
	Scripts        *services.OrderScriptService
	Images         *services.ImageService
}

// Handler holds the services behind every route.
type Handler struct {
	svc    Services
	db     Pinger
	errs   *ErrorMapper
	logger *zap.SugaredLogger
}

func NewHandler(svc Services, db Pinger, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, db: db, errs: DefaultErrorMapper(), logger: logger}
}
