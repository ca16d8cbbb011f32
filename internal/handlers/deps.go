package handlers

import (
	"context"

	"hoolicoin/internal/economy"
	"hoolicoin/internal/store"
)

type EconomyService interface {
	GetBalance(ctx context.Context, accountID string) (int64, error)
	ListShop(ctx context.Context) ([]store.ShopItem, error)
	Purchase(ctx context.Context, accountID, itemName string) (economy.Receipt, error)
	Credit(ctx context.Context, accountID string, amount int64) (int64, error)
	Leaderboard(ctx context.Context, limit int) ([]store.BalanceRow, error)
	RotateCatalog(ctx context.Context) error
}
