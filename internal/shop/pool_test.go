package shop

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPoolIsValid(t *testing.T) {
	if err := ValidatePool(DefaultPool()); err != nil {
		t.Fatalf("default pool must validate: %v", err)
	}
}

func TestValidatePoolEmpty(t *testing.T) {
	if err := ValidatePool(nil); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestValidatePoolDuplicateNameCaseInsensitive(t *testing.T) {
	pool := []Item{
		{Name: "Health Potion", Price: 100},
		{Name: "health potion", Price: 200},
	}
	if err := ValidatePool(pool); !errors.Is(err, ErrDuplicateItem) {
		t.Fatalf("expected ErrDuplicateItem, got %v", err)
	}
}

func TestValidatePoolBadPrice(t *testing.T) {
	for _, price := range []int64{0, -100} {
		pool := []Item{{Name: "Health Potion", Price: price}}
		if err := ValidatePool(pool); !errors.Is(err, ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem for price %d, got %v", price, err)
		}
	}
}

func TestValidatePoolEmptyName(t *testing.T) {
	pool := []Item{{Name: "   ", Price: 100}}
	if err := ValidatePool(pool); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
}

func TestLoadPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.json")
	content := `[{"name":"Health Potion","price":100},{"name":"Loot Crate","price":500}]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write pool file: %v", err)
	}
	items, err := LoadPool(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Health Potion" || items[1].Price != 500 {
		t.Fatalf("unexpected items: %#v", items)
	}
}

func TestLoadPoolRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.json")
	if err := os.WriteFile(path, []byte(`[{"name":"Free Stuff","price":0}]`), 0o600); err != nil {
		t.Fatalf("failed to write pool file: %v", err)
	}
	if _, err := LoadPool(path); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
}
