package services

import (
	"fmt"

	"restaurant-menu-api/apperr"
)

// fieldKind is the JSON type a patchable column accepts.
type fieldKind int

const (
	stringField fieldKind = iota
	boolField
	numberField
)

func (k fieldKind) String() string {
	switch k {
	case boolField:
		return "a boolean"
	case numberField:
		return "a number"
	default:
		return "a string"
	}
}

// checkPatch drops keys missing from allowed and rejects values of the wrong type.
// Numbers are normalised to float64.
func checkPatch(allowed map[string]fieldKind, patch map[string]any) (map[string]any, error) {
	fields := make(map[string]any, len(patch))
	for key, v := range patch {
		kind, ok := allowed[key]
		if !ok {
			continue
		}
		var valid bool
		switch kind {
		case stringField:
			_, valid = v.(string)
		case boolField:
			_, valid = v.(bool)
		case numberField:
			switch n := v.(type) {
			case float64:
				valid = true
			case int:
				v, valid = float64(n), true
			}
		}
		if !valid {
			return nil, apperr.Validation(fmt.Sprintf("%s must be %s", key, kind))
		}
		fields[key] = v
	}
	return fields, nil
}
