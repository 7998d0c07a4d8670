package config

import (
	"path/filepath"
	"testing"
	"time"

	"restaurant-menu-api/models"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "UPSTREAM_TIMEOUT", "FILTER_INACTIVE_RESTAURANTS", "FILTER_INACTIVE_MENUS", "HARD_DELETE_ITEMS"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8080" || cfg.DB.Driver != "postgres" || cfg.UpstreamTimeout != 10*time.Second {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if !cfg.FilterInactiveRestaurants || cfg.FilterInactiveMenus || cfg.HardDeleteItems {
		t.Fatalf("unexpected filter defaults %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("UPSTREAM_TIMEOUT", "3")
	t.Setenv("EXTERNAL_TIMEOUT", "250ms")
	t.Setenv("FILTER_INACTIVE_RESTAURANTS", "false")
	t.Setenv("HARD_DELETE_ITEMS", "yes please")

	cfg := Load()
	if cfg.DB.Driver != "sqlite" {
		t.Fatalf("driver = %q", cfg.DB.Driver)
	}
	if cfg.UpstreamTimeout != 3*time.Second || cfg.ExternalTimeout != 250*time.Millisecond {
		t.Fatalf("timeouts = %v, %v", cfg.UpstreamTimeout, cfg.ExternalTimeout)
	}
	if cfg.FilterInactiveRestaurants {
		t.Fatalf("expected restaurant filter off")
	}
	if cfg.HardDeleteItems {
		t.Fatalf("unparseable bool must fall back to default")
	}
}

func TestDSN(t *testing.T) {
	tests := map[string]struct {
		cfg  DBConfig
		want string
	}{
		"url wins": {
			cfg:  DBConfig{URL: "postgres://u:p@db.example:5432/menu", Host: "ignored"},
			want: "postgres://u:p@db.example:5432/menu",
		},
		"parts": {
			cfg:  DBConfig{Host: "h", User: "u", Password: "p", Name: "n", Port: "6543", SSLMode: "require"},
			want: "host=h user=u password=p dbname=n port=6543 sslmode=require",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.cfg.DSN(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInitDBSQLite(t *testing.T) {
	db, err := InitDB(DBConfig{Driver: "sqlite", Source: filepath.Join(t.TempDir(), "menu.db"), AutoMigrate: true})
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if !db.Migrator().HasTable(&models.MenuItem{}) {
		t.Fatalf("expected menu_items table after migration")
	}

	if _, err := InitDB(DBConfig{Driver: "oracle"}); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}
