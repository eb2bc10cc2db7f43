package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MenuItem is a catalog entry offered on the ordering grid. Only Name and
// Amount are needed to add an item to a table; DisplayName is what the grid
// shows.
type MenuItem struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Amount      float64 `json:"amount"`
}

// rawMenuItem tolerates the loose shapes older catalog exports used
// (name/display_name/title/item_name, amount/price/cost).
type rawMenuItem struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Title       string   `json:"title"`
	ItemName    string   `json:"item_name"`
	Amount      *float64 `json:"amount"`
	Price       *float64 `json:"price"`
	Cost        *float64 `json:"cost"`
}

// normalize maps a loose record onto a typed MenuItem or fails.
func (r rawMenuItem) normalize() (MenuItem, error) {
	name := firstNonBlank(r.Name, r.DisplayName, r.Title, r.ItemName)
	displayName := firstNonBlank(r.DisplayName, r.Name, r.Title)
	if name == "" || displayName == "" {
		return MenuItem{}, fmt.Errorf("menu record has no usable name")
	}
	var amount float64
	switch {
	case r.Amount != nil:
		amount = *r.Amount
	case r.Price != nil:
		amount = *r.Price
	case r.Cost != nil:
		amount = *r.Cost
	}
	if amount < 0 {
		return MenuItem{}, fmt.Errorf("menu record %q has a negative amount", name)
	}
	return MenuItem{Name: name, DisplayName: displayName, Amount: amount}, nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// menuListKeys are the wrapper keys catalog exports commonly nest their
// product list under.
var menuListKeys = []string{"items", "products", "menu", "menu_items"}

// DecodeMenu parses a catalog document into typed menu items. It accepts a
// bare JSON array or an object wrapping the list under a common key. Records
// that cannot be normalized are dropped; decoding fails only when the
// document itself is not valid JSON or holds no product list at all.
func DecodeMenu(data []byte) ([]MenuItem, error) {
	var rawList []rawMenuItem
	if err := json.Unmarshal(data, &rawList); err != nil {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("menu document is not valid JSON: %w", err)
		}
		found := false
		for _, key := range menuListKeys {
			raw, ok := wrapper[key]
			if !ok {
				continue
			}
			if err := json.Unmarshal(raw, &rawList); err == nil {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("menu document has no product list")
		}
	}

	items := make([]MenuItem, 0, len(rawList))
	for _, raw := range rawList {
		item, err := raw.normalize()
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
