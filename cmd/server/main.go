package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/bank-ledger/internal/accountnum"
	"github.com/api-sage/bank-ledger/internal/adapter/http/controller"
	"github.com/api-sage/bank-ledger/internal/adapter/http/middleware"
	"github.com/api-sage/bank-ledger/internal/adapter/http/router"
	"github.com/api-sage/bank-ledger/internal/adapter/repository/postgres"
	"github.com/api-sage/bank-ledger/internal/config"
	"github.com/api-sage/bank-ledger/internal/pingen"
	"github.com/api-sage/bank-ledger/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Open(startupCtx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(startupCtx, db, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	accountRepo := postgres.NewAccountRepository(db)
	transferRepo := postgres.NewTransferRepository(db)

	ledgerService := services.NewLedgerService(accountRepo, accountnum.New(), pingen.New())
	transferService := services.NewTransferService(accountRepo, transferRepo)

	accountController := controller.NewAccountController(ledgerService)
	transferController := controller.NewTransferController(transferService)

	authMiddleware := middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey)
	mux := router.New(accountController, transferController, authMiddleware)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}

	go func() {
		log.Printf("bank ledger listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve http: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown http server: %v", err)
	}
}
