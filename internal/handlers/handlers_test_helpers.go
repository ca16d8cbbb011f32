package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hoolicoin/internal/auth"
	"hoolicoin/internal/config"
	"hoolicoin/internal/economy"
	"hoolicoin/internal/store"
	"hoolicoin/internal/websocket"
)

type stubEngine struct {
	getBalanceFn  func(ctx context.Context, accountID string) (int64, error)
	listShopFn    func(ctx context.Context) ([]store.ShopItem, error)
	purchaseFn    func(ctx context.Context, accountID, itemName string) (economy.Receipt, error)
	creditFn      func(ctx context.Context, accountID string, amount int64) (int64, error)
	leaderboardFn func(ctx context.Context, limit int) ([]store.BalanceRow, error)
	rotateFn      func(ctx context.Context) error
}

func (s stubEngine) GetBalance(ctx context.Context, accountID string) (int64, error) {
	if s.getBalanceFn == nil {
		return 0, nil
	}
	return s.getBalanceFn(ctx, accountID)
}

func (s stubEngine) ListShop(ctx context.Context) ([]store.ShopItem, error) {
	if s.listShopFn == nil {
		return nil, nil
	}
	return s.listShopFn(ctx)
}

func (s stubEngine) Purchase(ctx context.Context, accountID, itemName string) (economy.Receipt, error) {
	if s.purchaseFn == nil {
		return economy.Receipt{}, nil
	}
	return s.purchaseFn(ctx, accountID, itemName)
}

func (s stubEngine) Credit(ctx context.Context, accountID string, amount int64) (int64, error) {
	if s.creditFn == nil {
		return 0, nil
	}
	return s.creditFn(ctx, accountID, amount)
}

func (s stubEngine) Leaderboard(ctx context.Context, limit int) ([]store.BalanceRow, error) {
	if s.leaderboardFn == nil {
		return nil, nil
	}
	return s.leaderboardFn(ctx, limit)
}

func (s stubEngine) RotateCatalog(ctx context.Context) error {
	if s.rotateFn == nil {
		return nil
	}
	return s.rotateFn(ctx)
}

const testSecret = "secret"

func newTestHandler(engine EconomyService) *Handler {
	cfg := config.Config{
		JWTSecret:      testSecret,
		AllowedOrigins: "*",
	}
	return New(cfg, engine, websocket.NewHub())
}

func doAuthenticated(t *testing.T, handler *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, "chatbot", time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rr, req)
	return rr
}
