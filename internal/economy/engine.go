package economy

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"time"

	"hoolicoin/internal/coins"
	"hoolicoin/internal/db"
	"hoolicoin/internal/shop"
	"hoolicoin/internal/store"
	"hoolicoin/internal/websocket"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	ErrItemNotFound      = errors.New("item not available in the shop")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidLimit      = errors.New("leaderboard limit out of range")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrEmptyPool         = errors.New("item pool is empty")
)

const maxLeaderboardLimit = 50

type LedgerStore interface {
	GetBalance(ctx context.Context, accountID string) (int64, error)
	GetBalanceForUpdate(ctx context.Context, tx store.Getter, accountID string) (int64, error)
	SetBalance(ctx context.Context, tx store.Execer, accountID string, balance int64) error
	Top(ctx context.Context, limit int) ([]store.BalanceRow, error)
}

type CatalogStore interface {
	List(ctx context.Context) ([]store.ShopItem, error)
	GetForPurchase(ctx context.Context, tx store.Getter, name string) (store.ShopItem, error)
	ReplaceAll(ctx context.Context, tx store.Execer, items []store.ShopItem) error
}

type BalanceHub interface {
	BroadcastBalance(accountID string, update websocket.BalanceUpdate)
	BroadcastCatalog(update websocket.CatalogUpdate)
}

// Engine is the sole writer of the ledger and the catalog. Every mutation
// runs inside the transaction runner, so concurrent purchases on one account
// serialize on its row lock and a catalog rotation is all-or-nothing.
type Engine struct {
	txRunner db.TxRunner
	ledger   LedgerStore
	catalog  CatalogStore
	pool     []shop.Item
	hub      BalanceHub
	now      func() time.Time
}

func NewEngine(txRunner db.TxRunner, ledger LedgerStore, catalog CatalogStore, pool []shop.Item, hub BalanceHub) *Engine {
	return &Engine{
		txRunner: txRunner,
		ledger:   ledger,
		catalog:  catalog,
		pool:     pool,
		hub:      hub,
		now:      time.Now,
	}
}

// Receipt describes a completed purchase. It is returned to the caller and
// broadcast, never persisted; possession of the item is the caller's concern.
type Receipt struct {
	ID        string `json:"receipt_id"`
	AccountID string `json:"account_id"`
	ItemName  string `json:"item_name"`
	Price     int64  `json:"price"`
	Balance   int64  `json:"balance"`
}

func (e *Engine) GetBalance(ctx context.Context, accountID string) (int64, error) {
	return e.ledger.GetBalance(ctx, accountID)
}

func (e *Engine) ListShop(ctx context.Context) ([]store.ShopItem, error) {
	return e.catalog.List(ctx)
}

// Purchase debits accountID by the price of the named item. The catalog
// lookup, the balance check and the debit share one transaction: the price
// cannot change underneath the debit, and no two purchases can spend the
// same coins.
func (e *Engine) Purchase(ctx context.Context, accountID, itemName string) (Receipt, error) {
	var receipt Receipt
	err := e.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		item, err := e.catalog.GetForPurchase(ctx, tx, itemName)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotFound
		}
		if err != nil {
			return err
		}
		balance, err := e.ledger.GetBalanceForUpdate(ctx, tx, accountID)
		if err != nil {
			return err
		}
		if balance < item.Price {
			return ErrInsufficientFunds
		}
		newBalance := balance - item.Price
		if err := e.ledger.SetBalance(ctx, tx, accountID, newBalance); err != nil {
			return err
		}
		receipt = Receipt{
			ID:        uuid.NewString(),
			AccountID: accountID,
			ItemName:  item.Name,
			Price:     item.Price,
			Balance:   newBalance,
		}
		return nil
	})
	if err != nil {
		return Receipt{}, err
	}
	e.broadcastBalance(accountID, receipt.Balance)
	return receipt, nil
}

// Credit is the balance-mutation primitive for putting coins on an account.
// Issuance policy lives with the caller.
func (e *Engine) Credit(ctx context.Context, accountID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	var newBalance int64
	err := e.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		balance, err := e.ledger.GetBalanceForUpdate(ctx, tx, accountID)
		if err != nil {
			return err
		}
		newBalance = balance + amount
		return e.ledger.SetBalance(ctx, tx, accountID, newBalance)
	})
	if err != nil {
		return 0, err
	}
	e.broadcastBalance(accountID, newBalance)
	return newBalance, nil
}

func (e *Engine) Leaderboard(ctx context.Context, limit int) ([]store.BalanceRow, error) {
	if limit < 1 || limit > maxLeaderboardLimit {
		return nil, ErrInvalidLimit
	}
	return e.ledger.Top(ctx, limit)
}

// RotateCatalog replaces the whole catalog with a fresh uniform draw from
// the pool, stamped with today's date. A failed replace rolls back entirely,
// leaving the previous catalog in place.
func (e *Engine) RotateCatalog(ctx context.Context) error {
	if len(e.pool) == 0 {
		return ErrEmptyPool
	}
	count := shop.CatalogSize
	if len(e.pool) < count {
		count = len(e.pool)
	}
	date := e.now().Format("2006-01-02")
	items := make([]store.ShopItem, 0, count)
	for _, idx := range rand.Perm(len(e.pool))[:count] {
		entry := e.pool[idx]
		items = append(items, store.ShopItem{Name: entry.Name, Price: entry.Price, ActivatedOn: date})
	}
	err := e.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		return e.catalog.ReplaceAll(ctx, tx, items)
	})
	if err != nil {
		return err
	}
	update := websocket.CatalogUpdate{Items: make([]websocket.CatalogItem, 0, len(items))}
	for _, item := range items {
		update.Items = append(update.Items, websocket.CatalogItem{
			Name:        item.Name,
			Price:       item.Price,
			ActivatedOn: item.ActivatedOn,
		})
	}
	e.hub.BroadcastCatalog(update)
	return nil
}

func (e *Engine) broadcastBalance(accountID string, balance int64) {
	e.hub.BroadcastBalance(accountID, websocket.BalanceUpdate{
		AccountID: accountID,
		Balance:   balance,
		Formatted: coins.Format(balance),
	})
}
