package websocket

import (
	"encoding/json"
	"sync"
)

// BalanceUpdate is pushed to subscribers of an account after any debit or
// credit.
type BalanceUpdate struct {
	Type      string `json:"type"`
	AccountID string `json:"account_id"`
	Balance   int64  `json:"balance"`
	Formatted string `json:"formatted"`
}

// CatalogUpdate is pushed to every connected client when the shop rotates.
type CatalogUpdate struct {
	Type  string        `json:"type"`
	Items []CatalogItem `json:"items"`
}

type CatalogItem struct {
	Name        string `json:"item_name"`
	Price       int64  `json:"price"`
	ActivatedOn string `json:"activated_on"`
}

type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(accountID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[accountID] == nil {
		h.clients[accountID] = make(map[*Client]struct{})
	}
	h.clients[accountID][client] = struct{}{}
}

func (h *Hub) Unregister(accountID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[accountID] == nil {
		return
	}
	delete(h.clients[accountID], client)
	if len(h.clients[accountID]) == 0 {
		delete(h.clients, accountID)
	}
}

func (h *Hub) BroadcastBalance(accountID string, update BalanceUpdate) {
	update.Type = "balance"
	payload, _ := json.Marshal(update)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients[accountID] {
		client.enqueue(payload)
	}
}

func (h *Hub) BroadcastCatalog(update CatalogUpdate) {
	update.Type = "catalog"
	payload, _ := json.Marshal(update)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, subscribers := range h.clients {
		for client := range subscribers {
			client.enqueue(payload)
		}
	}
}
