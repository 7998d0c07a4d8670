package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-menu-api/handlers"
	"restaurant-menu-api/models"
	"restaurant-menu-api/routes"
	"restaurant-menu-api/services"
	"restaurant-menu-api/services/mocks"
	"restaurant-menu-api/store"
	"restaurant-menu-api/store/storetest"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type firstPick struct{}

func (firstPick) IntN(int) int { return 0 }

type testServer struct {
	router     *gin.Engine
	db         *gorm.DB
	translator *mocks.MockTranslator
}

func newServer(t *testing.T) *testServer {
	t.Helper()
	db := storetest.Seeded(t)
	gw := store.NewGormGateway(db)
	logger := zap.NewNop().Sugar()
	translator := mocks.NewMockTranslator(gomock.NewController(t))

	h := handlers.NewHandler(handlers.Services{
		Menus:          services.NewMenuService(gw, services.MenuConfig{Tree: services.TreeOptions{ActiveRestaurantsOnly: true}}, logger),
		Customizations: services.NewCustomizationService(gw, logger),
		Allergens:      services.NewAllergenService(gw, firstPick{}, logger),
		Scripts:        services.NewOrderScriptService(gw, firstPick{}, translator, logger),
		Images:         services.NewImageService(gw, firstPick{}, nil, logger),
	}, gw, logger)

	r := gin.New()
	routes.SetupRoutes(r, h)
	return &testServer{router: r, db: db, translator: translator}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return out
}

func TestStatusCodes(t *testing.T) {
	s := newServer(t)

	tests := map[string]struct {
		method, path, body string
		status             int
	}{
		"health":                  {http.MethodGet, "/health", "", http.StatusOK},
		"index":                   {http.MethodGet, "/", "", http.StatusOK},
		"portion types":           {http.MethodGet, "/api/portion-types", "", http.StatusOK},
		"tree":                    {http.MethodGet, "/api/all-restaurant-menus", "", http.StatusOK},
		"unknown item":            {http.MethodGet, "/api/menu-items/item_404", "", http.StatusNotFound},
		"patch unknown item":      {http.MethodPut, "/api/menu-items/item_404", `{"base_price": 3}`, http.StatusNotFound},
		"delete unknown item":     {http.MethodDelete, "/api/menu-items/item_404", "", http.StatusNotFound},
		"negative price patch":    {http.MethodPut, "/api/menu-items/item_3", `{"base_price": -3}`, http.StatusBadRequest},
		"unknown allergen":        {http.MethodGet, "/api/menu-item-allergen/item_1/all_404", "", http.StatusNotFound},
		"swap unknown item":       {http.MethodGet, "/api/swap-option-value-allergen/item_404/all_1", "", http.StatusNotFound},
		"restaurant without name": {http.MethodPost, "/api/restaurants", `{"phone": "555"}`, http.StatusBadRequest},
		"unknown restaurant":      {http.MethodGet, "/api/restaurants/rest_404", "", http.StatusNotFound},
		"image not configured":    {http.MethodGet, "/api/generate-menu-image/item_1", "", http.StatusInternalServerError},
		"invalid language":        {http.MethodGet, "/api/order-script-translated/item_1/@@", "", http.StatusBadRequest},
		"unknown endpoint":        {http.MethodGet, "/api/nope", "", http.StatusNotFound},
		"malformed json":          {http.MethodPost, "/api/menu-items", `{"display_name":`, http.StatusBadRequest},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			w := s.do(t, tc.method, tc.path, tc.body)
			if w.Code != tc.status {
				t.Fatalf("%s %s: expected %d, got %d (%s)", tc.method, tc.path, tc.status, w.Code, w.Body.String())
			}
			if w.Code >= http.StatusBadRequest {
				body := decode[map[string]any](t, w)
				if msg, _ := body["error"].(string); msg == "" {
					t.Fatalf("error responses must carry an error message: %s", w.Body.String())
				}
			}
		})
	}
}

func TestCreateMenuItemRejectsIncompleteBody(t *testing.T) {
	s := newServer(t)
	var before int64
	s.db.Model(&models.MenuItem{}).Count(&before)

	w := s.do(t, http.MethodPost, "/api/menu-items", `{"display_name": "Quesadilla"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var after int64
	s.db.Model(&models.MenuItem{}).Count(&after)
	if after != before {
		t.Fatalf("row created despite validation failure")
	}
}

func TestCreateMenuItem(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/api/menu-items", `{"display_name": "Quesadilla", "base_price": 0, "restaurant_id": "rest_1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	item := decode[models.MenuItem](t, w)
	if !strings.HasPrefix(item.ID, "item_") || item.MenuID != "menu_1" {
		t.Fatalf("unexpected item %+v", item)
	}

	w = s.do(t, http.MethodPost, "/api/menu-items", `{"display_name": "Quesadilla", "base_price": 5, "restaurant_id": "rest_3"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without an active menu, got %d", w.Code)
	}
}

func TestSoftDeleteKeepsItemRetrievable(t *testing.T) {
	s := newServer(t)

	if w := s.do(t, http.MethodDelete, "/api/menu-items/item_1", ""); w.Code != http.StatusOK {
		t.Fatalf("delete: %d", w.Code)
	}
	w := s.do(t, http.MethodGet, "/api/menu-items/item_1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get after delete: %d", w.Code)
	}
	if item := decode[models.MenuItem](t, w); item.IsActive {
		t.Fatalf("expected inactive item")
	}

	tree := decode[[]services.RestaurantNode](t, s.do(t, http.MethodGet, "/api/all-restaurant-menus", ""))
	for _, m := range tree[0].Menus {
		for _, it := range m.MenuItems {
			if it.ID == "item_1" {
				t.Fatalf("deleted item still in tree")
			}
		}
	}
}

func TestPatchRejectsWrongTypes(t *testing.T) {
	s := newServer(t)

	bodies := []string{
		`{"is_active": "nope"}`,
		`{"is_available": {"a": 1}}`,
		`{"short_name": 42}`,
	}
	for _, body := range bodies {
		if w := s.do(t, http.MethodPut, "/api/menu-items/item_3", body); w.Code != http.StatusBadRequest {
			t.Fatalf("PUT %s: expected 400, got %d (%s)", body, w.Code, w.Body.String())
		}
	}

	w := s.do(t, http.MethodGet, "/api/menu-items/item_3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("item_3 must stay retrievable, got %d", w.Code)
	}
	if item := decode[models.MenuItem](t, w); !item.IsActive || item.ShortName != "" {
		t.Fatalf("rejected patch changed the row: %+v", item)
	}
	tree := decode[[]services.RestaurantNode](t, s.do(t, http.MethodGet, "/api/all-restaurant-menus", ""))
	found := false
	for _, it := range tree[0].Menus[0].MenuItems {
		found = found || it.ID == "item_3"
	}
	if !found {
		t.Fatalf("item_3 dropped out of the tree")
	}

	if w := s.do(t, http.MethodPut, "/api/restaurants/rest_1", `{"is_active": "nope"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("restaurant patch: expected 400, got %d", w.Code)
	}
	list := decode[map[string]any](t, s.do(t, http.MethodGet, "/api/restaurants", ""))
	if count, _ := list["count"].(float64); count != 2 {
		t.Fatalf("rest_1 must stay listed, got %v", list)
	}
}

func TestTreeShape(t *testing.T) {
	s := newServer(t)
	w := s.do(t, http.MethodGet, "/api/all-restaurant-menus", "")
	tree := decode[[]map[string]any](t, w)
	if len(tree) != 2 || tree[0]["id"] != "rest_1" {
		t.Fatalf("unexpected tree %s", w.Body.String())
	}
	menus, _ := tree[0]["menus"].([]any)
	if len(menus) != 2 {
		t.Fatalf("expected 2 menus for rest_1, got %d", len(menus))
	}
	lunch, _ := menus[0].(map[string]any)
	if _, ok := lunch["menu_items"].([]any); !ok {
		t.Fatalf("menu_items missing from %v", lunch)
	}
}

func TestOrderScriptEndpoints(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/api/order-script/item_3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("order script: %d", w.Code)
	}
	script := decode[services.OrderScript](t, w)
	if script.Script != "Hi, I would like to order Taco. No customizations needed. Thank you!" {
		t.Fatalf("unexpected script %q", script.Script)
	}

	s.translator.EXPECT().Translate(gomock.Any(), script.Script, "es").Return("Hola", nil)
	w = s.do(t, http.MethodGet, "/api/order-script-translated/item_3/es", "")
	if w.Code != http.StatusOK {
		t.Fatalf("translated: %d (%s)", w.Code, w.Body.String())
	}
	if out := decode[services.TranslatedOrderScript](t, w); out.TranslatedScript != "Hola" || out.Script != script.Script {
		t.Fatalf("unexpected translation %+v", out)
	}

	s.translator.EXPECT().Translate(gomock.Any(), gomock.Any(), "fr").Return("", errors.New("quota exceeded"))
	w = s.do(t, http.MethodGet, "/api/order-script-translated/item_3/fr", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on translation failure, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "quota") {
		t.Fatalf("upstream cause leaked: %s", w.Body.String())
	}
}

func TestStoreFailureIs500(t *testing.T) {
	s := newServer(t)
	sqlDB, err := s.db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.Close()

	w := s.do(t, http.MethodGet, "/api/all-restaurant-menus", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if body := decode[map[string]string](t, w); body["error"] != "failed to query restaurants" {
		t.Fatalf("unexpected error body %v", body)
	}

	if w := s.do(t, http.MethodGet, "/health", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected unhealthy, got %d", w.Code)
	}
}
