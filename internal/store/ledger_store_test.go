package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
)

func TestLedgerStoreGetBalanceMissingRow(t *testing.T) {
	store := NewLedgerStore(stubDB{
		getFn: func(context.Context, any, string, ...any) error {
			return sql.ErrNoRows
		},
	})
	balance, err := store.GetBalance(context.Background(), "acct-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 0 {
		t.Fatalf("expected 0 for missing row, got %d", balance)
	}
}

func TestLedgerStoreGetBalance(t *testing.T) {
	store := NewLedgerStore(stubDB{
		getFn: func(_ context.Context, dest any, query string, args ...any) error {
			if !strings.Contains(query, "FROM accounts") {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 1 || args[0] != "acct-1" {
				t.Fatalf("unexpected args: %#v", args)
			}
			*dest.(*int64) = 150
			return nil
		},
	})
	balance, err := store.GetBalance(context.Background(), "acct-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 150 {
		t.Fatalf("unexpected balance: %d", balance)
	}
}

func TestLedgerStoreGetBalanceError(t *testing.T) {
	broken := errors.New("connection reset")
	store := NewLedgerStore(stubDB{
		getFn: func(context.Context, any, string, ...any) error {
			return broken
		},
	})
	if _, err := store.GetBalance(context.Background(), "acct-1"); !errors.Is(err, broken) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestLedgerStoreGetBalanceForUpdateMissingRow(t *testing.T) {
	store := NewLedgerStore(stubDB{})
	balance, err := store.GetBalanceForUpdate(context.Background(), stubGetter{
		getFn: func(_ context.Context, _ any, query string, _ ...any) error {
			if !strings.Contains(query, "FOR UPDATE") {
				t.Fatalf("expected row lock, got query: %s", query)
			}
			return sql.ErrNoRows
		},
	}, "acct-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 0 {
		t.Fatalf("expected 0 for missing row, got %d", balance)
	}
}

func TestLedgerStoreSetBalanceUpserts(t *testing.T) {
	store := NewLedgerStore(stubDB{})
	err := store.SetBalance(context.Background(), stubExecer{
		execFn: func(_ context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "ON CONFLICT (account_id)") {
				t.Fatalf("expected upsert, got query: %s", query)
			}
			if len(args) != 2 || args[0] != "acct-1" || args[1] != int64(50) {
				t.Fatalf("unexpected args: %#v", args)
			}
			return stubResult{rows: 1}, nil
		},
	}, "acct-1", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLedgerStoreTop(t *testing.T) {
	store := NewLedgerStore(stubDB{
		selectFn: func(_ context.Context, dest any, query string, args ...any) error {
			if !strings.Contains(query, "ORDER BY balance DESC, account_id ASC") {
				t.Fatalf("unexpected order clause: %s", query)
			}
			if len(args) != 1 || args[0] != 10 {
				t.Fatalf("unexpected args: %#v", args)
			}
			*dest.(*[]BalanceRow) = []BalanceRow{
				{AccountID: "rich", Balance: 900},
				{AccountID: "poor", Balance: 10},
			}
			return nil
		},
	})
	rows, err := store.Top(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[0].AccountID != "rich" {
		t.Fatalf("unexpected rows: %#v", rows)
	}
}
