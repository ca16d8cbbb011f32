package store

import (
	"context"
	"database/sql"
	"errors"
)

// LedgerStore persists account balances. An absent row means a balance of
// zero; rows are created on first write.
type LedgerStore struct {
	db DB
}

type BalanceRow struct {
	AccountID string `db:"account_id" json:"account_id"`
	Balance   int64  `db:"balance" json:"balance"`
}

func NewLedgerStore(db DB) *LedgerStore {
	return &LedgerStore{db: db}
}

func (s *LedgerStore) GetBalance(ctx context.Context, accountID string) (int64, error) {
	var balance int64
	err := s.db.GetContext(ctx, &balance, `
		SELECT balance
		FROM accounts
		WHERE account_id = $1
	`, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// GetBalanceForUpdate locks the account row for the duration of the caller's
// transaction. A missing row reads as zero; there is nothing to lock then,
// which is safe because a zero balance cannot fund any purchase.
func (s *LedgerStore) GetBalanceForUpdate(ctx context.Context, tx Getter, accountID string) (int64, error) {
	var balance int64
	err := tx.GetContext(ctx, &balance, `
		SELECT balance
		FROM accounts
		WHERE account_id = $1
		FOR UPDATE
	`, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// SetBalance upserts the account row. Non-negativity is the engine's
// invariant; the store only moves bytes.
func (s *LedgerStore) SetBalance(ctx context.Context, tx Execer, accountID string, balance int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO accounts (account_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (account_id) DO UPDATE SET balance = EXCLUDED.balance, updated_at = NOW()
	`, accountID, balance)
	return err
}

func (s *LedgerStore) Top(ctx context.Context, limit int) ([]BalanceRow, error) {
	var rows []BalanceRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT account_id, balance
		FROM accounts
		ORDER BY balance DESC, account_id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
