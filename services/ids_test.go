package services

import (
	"regexp"
	"testing"
	"time"
)

var idPattern = regexp.MustCompile(`^item_1700000000123_[0-9a-z]{9}$`)

func TestNewIDFormat(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	seen := make(map[string]bool)
	for range 50 {
		id := newIDAt("item", at)
		if !idPattern.MatchString(id) {
			t.Fatalf("id %q does not match %s", id, idPattern)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestNewIDSuffixLeadingDigitVaries(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	prefix := len("item_1700000000123_")
	leading := make(map[byte]bool)
	for range 200 {
		leading[newIDAt("item", at)[prefix]] = true
	}
	if len(leading) < 10 {
		t.Fatalf("suffix leading digit barely varies: %d distinct values", len(leading))
	}
}

func TestBase36SuffixKeepsLowDigits(t *testing.T) {
	// 36^12 + 35 renders as "1" followed by eleven zeros and "z".
	n := uint64(4738381338321616896) + 35
	if got := base36Suffix(n); got != "00000000z" {
		t.Fatalf("got %q, expected 00000000z", got)
	}
	if got := base36Suffix(35); got != "z" {
		t.Fatalf("short values are kept whole, got %q", got)
	}
}
