package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestKindsMatchThroughWrapping(t *testing.T) {
	cases := map[string]struct {
		err  error
		kind error
	}{
		"validation":  {Validation("name is required"), ErrValidation},
		"not found":   {NotFound("menu item not found"), ErrNotFound},
		"upstream":    {Upstream("failed to load menus", errors.New("conn reset")), ErrUpstreamQuery},
		"external":    {External("image API key is not configured", nil), ErrExternalService},
		"translation": {Translation("translation failed", errors.New("503")), ErrTranslation},
	}

	for name, tc := range cases {
		wrapped := fmt.Errorf("handler: %w", tc.err)
		if !errors.Is(wrapped, tc.kind) {
			t.Fatalf("%s: expected errors.Is to match kind %v", name, tc.kind)
		}
		if errors.Is(wrapped, ErrNotFound) && tc.kind != ErrNotFound {
			t.Fatalf("%s: unexpected match with ErrNotFound", name)
		}
	}
}

func TestUpstreamKeepsCause(t *testing.T) {
	err := Upstream("failed to load menus", context.DeadlineExceeded)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected cause to be reachable through Unwrap")
	}
	if got := Message(err, "internal server error"); got != "failed to load menus" {
		t.Fatalf("Message() = %q", got)
	}
	if got := err.Error(); got != "failed to load menus: context deadline exceeded" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestMessageFallback(t *testing.T) {
	if got := Message(errors.New("boom"), "internal server error"); got != "internal server error" {
		t.Fatalf("Message() = %q", got)
	}
}
