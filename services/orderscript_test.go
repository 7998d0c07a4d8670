package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"restaurant-menu-api/apperr"
	"restaurant-menu-api/services/mocks"

	"go.uber.org/mock/gomock"
)

func TestBuildOrderScript(t *testing.T) {
	tests := map[string]struct {
		item    string
		choices []Choice
		want    string
	}{
		"no customizations": {
			item: "Burrito",
			want: "Hi, I would like to order Burrito. No customizations needed. Thank you!",
		},
		"lowercases option and value": {
			item:    "Burrito",
			choices: []Choice{{Option: "Protein", Value: "Black Beans"}, {Option: "Salsa", Value: "HOT"}},
			want:    "Hi, I would like to order Burrito. My choice of protein is black beans. My choice of salsa is hot. Thank you!",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := BuildOrderScript(tc.item, tc.choices); got != tc.want {
				t.Fatalf("got %q\nwant %q", got, tc.want)
			}
		})
	}
}

func TestOrderScriptGenerate(t *testing.T) {
	gw, _ := seededGateway(t)
	svc := NewOrderScriptService(gw, fixedPick(0), nil, nopLogger)
	ctx := context.Background()

	script, err := svc.Generate(ctx, "item_1")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := "Hi, I would like to order Burrito. My choice of protein is chicken. My choice of salsa is mild. Thank you!"
	if script.Script != want {
		t.Fatalf("got %q\nwant %q", script.Script, want)
	}

	plain, err := svc.Generate(ctx, "item_3")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plain.Script != "Hi, I would like to order Taco. No customizations needed. Thank you!" || len(plain.Choices) != 0 {
		t.Fatalf("unexpected script %+v", plain)
	}

	if _, err := svc.Generate(ctx, "item_404"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderScriptTranslated(t *testing.T) {
	gw, _ := seededGateway(t)
	ctx := context.Background()
	source := "Hi, I would like to order Taco. No customizations needed. Thank you!"

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		translator := mocks.NewMockTranslator(ctrl)
		translator.EXPECT().
			Translate(gomock.Any(), source, "es").
			Return("Hola, quisiera pedir Taco. No necesito personalizaciones. ¡Gracias!", nil)

		out, err := NewOrderScriptService(gw, fixedPick(0), translator, nopLogger).GenerateTranslated(ctx, "item_3", "es")
		if err != nil {
			t.Fatalf("GenerateTranslated: %v", err)
		}
		if out.Script != source || out.Language != "es" || !strings.HasPrefix(out.TranslatedScript, "Hola") {
			t.Fatalf("unexpected result %+v", out)
		}
	})

	t.Run("translation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		translator := mocks.NewMockTranslator(ctrl)
		translator.EXPECT().Translate(gomock.Any(), gomock.Any(), "xx").Return("", errors.New("bad language"))

		_, err := NewOrderScriptService(gw, fixedPick(0), translator, nopLogger).GenerateTranslated(ctx, "item_3", "xx")
		if !errors.Is(err, apperr.ErrTranslation) {
			t.Fatalf("expected ErrTranslation, got %v", err)
		}
	})

	t.Run("missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		translator := mocks.NewMockTranslator(ctrl)
		translator.EXPECT().Translate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", apperr.ErrNotConfigured)

		_, err := NewOrderScriptService(gw, fixedPick(0), translator, nopLogger).GenerateTranslated(ctx, "item_3", "fr")
		if !errors.Is(err, apperr.ErrExternalService) {
			t.Fatalf("expected ErrExternalService, got %v", err)
		}
	})

	t.Run("no translator", func(t *testing.T) {
		_, err := NewOrderScriptService(gw, fixedPick(0), nil, nopLogger).GenerateTranslated(ctx, "item_3", "fr")
		if !errors.Is(err, apperr.ErrExternalService) {
			t.Fatalf("expected ErrExternalService, got %v", err)
		}
	})
}

func TestMenuImage(t *testing.T) {
	gw, _ := seededGateway(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := mocks.NewMockImageGenerator(ctrl)
		wantPrompt := "A realistic, appetizing photo of Burrito with chicken, plated for a restaurant menu. Flour tortilla with rice."
		gen.EXPECT().Generate(gomock.Any(), wantPrompt).Return("https://images.example/burrito.png", nil)

		img, err := NewImageService(gw, fixedPick(0), gen, nopLogger).Generate(ctx, "item_1")
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if img.OptionValue != "Chicken" || img.ImageURL != "https://images.example/burrito.png" || img.Prompt != wantPrompt {
			t.Fatalf("unexpected image %+v", img)
		}
	})

	t.Run("generator failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := mocks.NewMockImageGenerator(ctrl)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("rate limited"))

		_, err := NewImageService(gw, fixedPick(0), gen, nopLogger).Generate(ctx, "item_3")
		if !errors.Is(err, apperr.ErrExternalService) {
			t.Fatalf("expected ErrExternalService, got %v", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		_, err := NewImageService(gw, fixedPick(0), nil, nopLogger).Generate(ctx, "item_1")
		if !errors.Is(err, apperr.ErrExternalService) {
			t.Fatalf("expected ErrExternalService, got %v", err)
		}
	})

	t.Run("missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := mocks.NewMockImageGenerator(ctrl)
		_, err := NewImageService(gw, fixedPick(0), gen, nopLogger).Generate(ctx, "item_404")
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestBuildImagePrompt(t *testing.T) {
	if got := BuildImagePrompt("Taco", "", ""); got != "A realistic, appetizing photo of Taco, plated for a restaurant menu." {
		t.Fatalf("unexpected prompt %q", got)
	}
}
