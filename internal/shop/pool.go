package shop

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// CatalogSize is how many items each rotation puts on sale.
const CatalogSize = 3

// Item is a pool entry eligible for rotation. The pool is loaded once at
// startup and never mutated afterwards.
type Item struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

var (
	ErrEmptyPool     = errors.New("item pool is empty")
	ErrDuplicateItem = errors.New("duplicate item name in pool")
	ErrInvalidItem   = errors.New("invalid pool item")
)

// DefaultPool returns the built-in item pool.
func DefaultPool() []Item {
	return []Item{
		{Name: "Health Potion", Price: 100},
		{Name: "Mana Potion", Price: 120},
		{Name: "Loot Crate", Price: 500},
		{Name: "XP Booster", Price: 800},
		{Name: "Golden Sword", Price: 1500},
		{Name: "Dragon Armor", Price: 2000},
		{Name: "Mysterious Scroll", Price: 400},
		{Name: "Resurrection Stone", Price: 1000},
	}
}

// LoadPool reads a JSON item pool from path.
func LoadPool(path string) ([]Item, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(content, &items); err != nil {
		return nil, fmt.Errorf("parse pool file %s: %w", path, err)
	}
	if err := ValidatePool(items); err != nil {
		return nil, err
	}
	return items, nil
}

// ValidatePool checks that names are non-empty and unique (purchase lookups
// are case-insensitive, so uniqueness is case-insensitive too) and prices are
// positive.
func ValidatePool(items []Item) error {
	if len(items) == 0 {
		return ErrEmptyPool
	}
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		name := strings.ToLower(strings.TrimSpace(item.Name))
		if name == "" {
			return fmt.Errorf("%w: empty name", ErrInvalidItem)
		}
		if item.Price <= 0 {
			return fmt.Errorf("%w: %s has non-positive price", ErrInvalidItem, item.Name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateItem, item.Name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
