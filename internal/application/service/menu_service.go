package service

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bakehouse/counter-api/internal/domain/entity"
)

// MenuService loads the item catalog the ordering grid offers. Catalog
// documents are JSON files in the configured directory; loose record shapes
// are normalized into typed MenuItem values, and a directory with no usable
// catalog falls back to the built-in default menu.
type MenuService struct {
	dir string
}

// NewMenuService creates a new menu service
func NewMenuService(dir string) *MenuService {
	return &MenuService{dir: dir}
}

// LoadCatalog merges every catalog file in the menu directory. A file that
// fails to decode is logged and skipped. Duplicate names keep the first
// occurrence; the merged list is sorted by display name.
func (s *MenuService) LoadCatalog() []entity.MenuItem {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("menu: error reading catalog directory %s: %v", s.dir, err)
		}
		return DefaultMenu()
	}

	seen := map[string]bool{}
	var items []entity.MenuItem
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.dir, file.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("menu: error reading %s: %v", path, err)
			continue
		}
		decoded, err := entity.DecodeMenu(data)
		if err != nil {
			log.Printf("menu: error decoding %s: %v", path, err)
			continue
		}
		for _, item := range decoded {
			if seen[item.Name] {
				continue
			}
			seen[item.Name] = true
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return DefaultMenu()
	}
	sort.Slice(items, func(i, j int) bool { return items[i].DisplayName < items[j].DisplayName })
	return items
}

// DefaultMenu seeds an empty catalog with the standard counter items.
func DefaultMenu() []entity.MenuItem {
	return []entity.MenuItem{
		{Name: "Coffee", DisplayName: "Coffee", Amount: 3.50},
		{Name: "Tea", DisplayName: "Tea", Amount: 2.50},
		{Name: "Espresso", DisplayName: "Espresso", Amount: 4.00},
		{Name: "Cappuccino", DisplayName: "Cappuccino", Amount: 4.50},
		{Name: "Soda", DisplayName: "Soda", Amount: 2.00},
		{Name: "Sandwich", DisplayName: "Sandwich", Amount: 8.00},
		{Name: "Burger", DisplayName: "Burger", Amount: 12.00},
		{Name: "Pizza", DisplayName: "Pizza", Amount: 15.00},
		{Name: "Salad", DisplayName: "Salad", Amount: 7.50},
		{Name: "Pasta", DisplayName: "Pasta", Amount: 10.00},
		{Name: "Fries", DisplayName: "Fries", Amount: 5.00},
		{Name: "Ice Cream", DisplayName: "Ice Cream", Amount: 4.50},
	}
}
