package services

import (
	"reflect"
	"testing"

	"restaurant-menu-api/nutrition"
)

func value(id string, protein float64, diets ...string) EnrichedValue {
	return EnrichedValue{ID: id, Nutrition: nutrition.Facts{ProteinG: protein}, Diets: diets}
}

func TestRankProteinValues(t *testing.T) {
	tests := map[string]struct {
		in   []EnrichedValue
		want []string
	}{
		"best vegan first then non-vegan": {
			in:   []EnrichedValue{value("veganA", 5, "vegan"), value("nonveganB", 9), value("veganC", 8, "Vegan")},
			want: []string{"veganC", "nonveganB"},
		},
		"no vegan values": {
			in:   []EnrichedValue{value("a", 1), value("b", 3), value("c", 2)},
			want: []string{"b", "c", "a"},
		},
		"only vegan values": {
			in:   []EnrichedValue{value("a", 1, "vegan"), value("b", 3, "vegan")},
			want: []string{"b"},
		},
		"ties keep input order": {
			in:   []EnrichedValue{value("x", 4), value("y", 4), value("v1", 2, "vegan"), value("v2", 2, "vegan")},
			want: []string{"v1", "x", "y"},
		},
		"empty": {
			in:   nil,
			want: nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var got []string
			for _, v := range RankProteinValues(tc.in) {
				got = append(got, v.ID)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsVegan(t *testing.T) {
	tests := map[string]struct {
		diets []string
		want  bool
	}{
		"exact":        {[]string{"vegan"}, true},
		"mixed case":   {[]string{"Gluten Free", " VEGAN "}, true},
		"vegetarian":   {[]string{"Vegetarian"}, false},
		"substring":    {[]string{"vegan-friendly"}, false},
		"no diet tags": {nil, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := IsVegan(tc.diets); got != tc.want {
				t.Fatalf("IsVegan(%v) = %v, want %v", tc.diets, got, tc.want)
			}
		})
	}
}
