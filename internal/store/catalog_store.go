package store

import "context"

// CatalogStore persists the active shop catalog. The whole set is replaced
// on rotation; individual items are never touched outside ReplaceAll.
type CatalogStore struct {
	db DB
}

type ShopItem struct {
	Name        string `db:"item_name" json:"item_name"`
	Price       int64  `db:"price" json:"price"`
	ActivatedOn string `db:"activated_on" json:"activated_on"`
}

func NewCatalogStore(db DB) *CatalogStore {
	return &CatalogStore{db: db}
}

func (s *CatalogStore) List(ctx context.Context) ([]ShopItem, error) {
	var items []ShopItem
	err := s.db.SelectContext(ctx, &items, `
		SELECT item_name, price, activated_on
		FROM shop_items
		ORDER BY price ASC, item_name ASC
	`)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetForPurchase resolves an item by case-insensitive name. Run inside the
// purchase transaction so the price and the debit come from one consistent
// read.
func (s *CatalogStore) GetForPurchase(ctx context.Context, tx Getter, name string) (ShopItem, error) {
	var item ShopItem
	err := tx.GetContext(ctx, &item, `
		SELECT item_name, price, activated_on
		FROM shop_items
		WHERE LOWER(item_name) = LOWER($1)
	`, name)
	if err != nil {
		return ShopItem{}, err
	}
	return item, nil
}

// ReplaceAll deletes the current catalog and inserts items as one unit. The
// caller supplies the transaction; readers never observe a partial catalog.
func (s *CatalogStore) ReplaceAll(ctx context.Context, tx Execer, items []ShopItem) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM shop_items`); err != nil {
		return err
	}
	for _, item := range items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO shop_items (item_name, price, activated_on)
			VALUES ($1, $2, $3)
		`, item.Name, item.Price, item.ActivatedOn)
		if err != nil {
			return err
		}
	}
	return nil
}
