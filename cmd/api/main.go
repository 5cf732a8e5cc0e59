package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/fatura/internal/bill"
	billStore "github.com/MrJamesThe3rd/fatura/internal/bill/store"
	"github.com/MrJamesThe3rd/fatura/internal/card"
	cardStore "github.com/MrJamesThe3rd/fatura/internal/card/store"
	"github.com/MrJamesThe3rd/fatura/internal/categorize"
	categorizeStore "github.com/MrJamesThe3rd/fatura/internal/categorize/store"
	"github.com/MrJamesThe3rd/fatura/internal/config"
	"github.com/MrJamesThe3rd/fatura/internal/database"
	faturaHttp "github.com/MrJamesThe3rd/fatura/internal/http"
	billHandler "github.com/MrJamesThe3rd/fatura/internal/http/bill"
	cardHandler "github.com/MrJamesThe3rd/fatura/internal/http/card"
	categorizeHandler "github.com/MrJamesThe3rd/fatura/internal/http/categorize"
	itemHandler "github.com/MrJamesThe3rd/fatura/internal/http/item"
	"github.com/MrJamesThe3rd/fatura/internal/item"
	itemStore "github.com/MrJamesThe3rd/fatura/internal/item/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		cards      = cardStore.New(db)
		bills      = billStore.New(db)
		items      = itemStore.New(db)
		categorizr = categorizeStore.New(db)
	)

	var (
		cardService       = card.NewService(cards)
		billService       = bill.NewService(bills, cards, items)
		itemService       = item.NewService(items, cards, billService)
		categorizeService = categorize.NewService(categorizr)
	)

	// Close any bills whose closing day passed while the process was down,
	// then keep sweeping on an interval.
	billService.CatchUp(context.Background(), time.Now())
	go runCatchUp(billService, cfg.Billing.CatchUpInterval)

	var (
		cardH       = cardHandler.NewHandler(cardService)
		billH       = billHandler.NewHandler(billService, itemService)
		itemH       = itemHandler.NewHandler(itemService)
		categorizeH = categorizeHandler.NewHandler(categorizeService)
	)

	router := faturaHttp.New(cfg.Auth.JWTSecret, cardH, billH, itemH, categorizeH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func runCatchUp(bills *bill.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		bills.CatchUp(context.Background(), time.Now())
	}
}
