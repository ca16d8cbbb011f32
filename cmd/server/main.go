package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hoolicoin/internal/config"
	"hoolicoin/internal/db"
	"hoolicoin/internal/economy"
	"hoolicoin/internal/handlers"
	"hoolicoin/internal/scheduler"
	"hoolicoin/internal/shop"
	"hoolicoin/internal/store"
	"hoolicoin/internal/websocket"
)

func main() {
	cfg := config.Load()
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer database.Close()

	pool := shop.DefaultPool()
	if cfg.ShopPoolFile != "" {
		pool, err = shop.LoadPool(cfg.ShopPoolFile)
		if err != nil {
			log.Fatalf("failed to load shop pool: %v", err)
		}
	}
	if err := shop.ValidatePool(pool); err != nil {
		log.Fatalf("invalid shop pool: %v", err)
	}

	ledger := store.NewLedgerStore(database)
	catalog := store.NewCatalogStore(database)
	txRunner := db.NewTxRunner(database)
	hub := websocket.NewHub()
	engine := economy.NewEngine(txRunner, ledger, catalog, pool, hub)

	// First boot only: an empty shop would otherwise stay empty until the
	// first rotation tick, a full interval away.
	items, err := engine.ListShop(context.Background())
	if err != nil {
		log.Fatalf("failed to read shop: %v", err)
	}
	if len(items) == 0 {
		if err := engine.RotateCatalog(context.Background()); err != nil {
			log.Fatalf("initial shop rotation failed: %v", err)
		}
		log.Println("shop stocked for first boot")
	}

	rotation := scheduler.New(engine)
	if err := rotation.Start(cfg.RotationInterval); err != nil {
		log.Fatalf("failed to start rotation scheduler: %v", err)
	}
	defer rotation.Stop()

	handler := handlers.New(cfg, engine, hub)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("hoolicoin API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
