package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hoolicoin/internal/economy"
)

func TestPurchase(t *testing.T) {
	handler := newTestHandler(stubEngine{
		purchaseFn: func(_ context.Context, accountID, itemName string) (economy.Receipt, error) {
			if accountID != "acct-1" || itemName != "health potion" {
				t.Fatalf("unexpected arguments: %s %s", accountID, itemName)
			}
			return economy.Receipt{
				ID:        "receipt-1",
				AccountID: accountID,
				ItemName:  "Health Potion",
				Price:     100,
				Balance:   50,
			}, nil
		},
	})

	body := `{"account_id":"acct-1","item_name":"health potion"}`
	req := httptest.NewRequest(http.MethodPost, "/purchases", strings.NewReader(body))
	rr := doAuthenticated(t, handler, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var payload map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["item_name"] != "Health Potion" || payload["balance"] != float64(50) {
		t.Fatalf("unexpected payload: %#v", payload)
	}
	if payload["formatted"] != "50" {
		t.Fatalf("unexpected formatted balance: %#v", payload["formatted"])
	}
}

func TestPurchaseItemNotFound(t *testing.T) {
	handler := newTestHandler(stubEngine{
		purchaseFn: func(context.Context, string, string) (economy.Receipt, error) {
			return economy.Receipt{}, economy.ErrItemNotFound
		},
	})

	body := `{"account_id":"acct-1","item_name":"mystery box"}`
	req := httptest.NewRequest(http.MethodPost, "/purchases", strings.NewReader(body))
	rr := doAuthenticated(t, handler, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "item_not_found") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	handler := newTestHandler(stubEngine{
		purchaseFn: func(context.Context, string, string) (economy.Receipt, error) {
			return economy.Receipt{}, economy.ErrInsufficientFunds
		},
	})

	body := `{"account_id":"acct-1","item_name":"dragon armor"}`
	req := httptest.NewRequest(http.MethodPost, "/purchases", strings.NewReader(body))
	rr := doAuthenticated(t, handler, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "insufficient_funds") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestPurchaseValidation(t *testing.T) {
	handler := newTestHandler(stubEngine{
		purchaseFn: func(context.Context, string, string) (economy.Receipt, error) {
			t.Fatal("engine must not be called for invalid input")
			return economy.Receipt{}, nil
		},
	})

	cases := []string{
		`{"account_id":"","item_name":"health potion"}`,
		`{"account_id":"acct-1","item_name":""}`,
		`not json`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/purchases", strings.NewReader(body))
		rr := doAuthenticated(t, handler, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d", body, rr.Code)
		}
	}
}

func TestPurchaseRequiresAuth(t *testing.T) {
	handler := newTestHandler(stubEngine{})
	body := `{"account_id":"acct-1","item_name":"health potion"}`
	req := httptest.NewRequest(http.MethodPost, "/purchases", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestCredit(t *testing.T) {
	handler := newTestHandler(stubEngine{
		creditFn: func(_ context.Context, accountID string, amount int64) (int64, error) {
			if accountID != "acct-1" || amount != 1500 {
				t.Fatalf("unexpected arguments: %s %d", accountID, amount)
			}
			return 1500, nil
		},
	})

	body := `{"account_id":"acct-1","amount":1500}`
	req := httptest.NewRequest(http.MethodPost, "/credits", strings.NewReader(body))
	rr := doAuthenticated(t, handler, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var payload map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["formatted"] != "1,500" {
		t.Fatalf("unexpected formatted balance: %#v", payload["formatted"])
	}
}

func TestCreditInvalidAmount(t *testing.T) {
	handler := newTestHandler(stubEngine{
		creditFn: func(context.Context, string, int64) (int64, error) {
			return 0, economy.ErrInvalidAmount
		},
	})

	body := `{"account_id":"acct-1","amount":-5}`
	req := httptest.NewRequest(http.MethodPost, "/credits", strings.NewReader(body))
	rr := doAuthenticated(t, handler, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
