package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/MrJamesThe3rd/tally/internal/account"
	accountStore "github.com/MrJamesThe3rd/tally/internal/account/store"
	"github.com/MrJamesThe3rd/tally/internal/checkpoint"
	checkpointStore "github.com/MrJamesThe3rd/tally/internal/checkpoint/store"
	"github.com/MrJamesThe3rd/tally/internal/config"
	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/drawdown"
	"github.com/MrJamesThe3rd/tally/internal/export"
	tallyHttp "github.com/MrJamesThe3rd/tally/internal/http"
	accountHandler "github.com/MrJamesThe3rd/tally/internal/http/account"
	checkpointHandler "github.com/MrJamesThe3rd/tally/internal/http/checkpoint"
	drawdownHandler "github.com/MrJamesThe3rd/tally/internal/http/drawdown"
	exportHandler "github.com/MrJamesThe3rd/tally/internal/http/export"
	importHandler "github.com/MrJamesThe3rd/tally/internal/http/importstatement"
	pairingHandler "github.com/MrJamesThe3rd/tally/internal/http/pairing"
	reconcileHandler "github.com/MrJamesThe3rd/tally/internal/http/reconcile"
	txHandler "github.com/MrJamesThe3rd/tally/internal/http/transaction"
	"github.com/MrJamesThe3rd/tally/internal/importer"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/tally/internal/ledger/store"
	"github.com/MrJamesThe3rd/tally/internal/pairing"
	"github.com/MrJamesThe3rd/tally/internal/reconcile"
	"github.com/MrJamesThe3rd/tally/internal/split"
)

func main() {
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

	store := ledgerStore.New(db)

	var (
		ledgerService     = ledger.NewService(store)
		splitService      = split.NewService(store)
		pairingService    = pairing.NewService(ledgerStore.NewPairing(db))
		drawdownService   = drawdown.NewService(ledgerStore.NewDrawdowns(db))
		reconcileService  = reconcile.NewService(ledgerStore.NewReconcile(db))
		accountService    = account.NewService(accountStore.New(db))
		checkpointService = checkpoint.NewService(checkpointStore.New(db))
		importService     = importer.NewService()
		exportService     = export.NewService(ledgerService)
	)

	var (
		accountH    = accountHandler.NewHandler(accountService)
		txH         = txHandler.NewHandler(ledgerService, splitService)
		pairingH    = pairingHandler.NewHandler(pairingService)
		drawdownH   = drawdownHandler.NewHandler(drawdownService)
		checkpointH = checkpointHandler.NewHandler(checkpointService)
		reconcileH  = reconcileHandler.NewHandler(reconcileService)
		importH     = importHandler.NewHandler(importService, ledgerService)
		exportH     = exportHandler.NewHandler(exportService)
	)

	router := tallyHttp.New(cfg.Auth.Secret,
		accountH, txH, pairingH, drawdownH, checkpointH, reconcileH, importH, exportH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "port", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
