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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	dashcache "loan-ledger/internal/adapter/cache"
	httpadp "loan-ledger/internal/adapter/http"
	idemp "loan-ledger/internal/adapter/middleware"
	"loan-ledger/internal/adapter/repository/gormstore"
	"loan-ledger/internal/config"
	"loan-ledger/internal/infrastructure/cache"
	"loan-ledger/internal/infrastructure/db"
	ucClient "loan-ledger/internal/usecase/client"
	ucDelinquency "loan-ledger/internal/usecase/delinquency"
	ucLoan "loan-ledger/internal/usecase/loan"
	ucReport "loan-ledger/internal/usecase/report"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer sqlDB.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
	} else {
		log.Printf("redis disabled: no idempotency, no dashboard cache")
	}

	// repositories
	clients := gormstore.NewClientRepository(gdb)
	loans := gormstore.NewLoanRepository(gdb)
	payments := gormstore.NewPaymentRepository(gdb)
	tx := gormstore.NewGormUoW(gdb)

	// usecases
	clientUC := ucClient.NewUsecase(clients, loans, tx)
	loanUC := ucLoan.NewUsecase(loans, clients, tx, cfg.BaseRate)
	sweepUC := ucDelinquency.NewUsecase(tx)
	reportUC := ucReport.NewUsecase(gormstore.NewReportRepository(gdb), loans, clients, payments, gormstore.NewNotificationRepository(gdb))
	if rdb != nil && cfg.DashboardCacheTTLSecs > 0 {
		dash := dashcache.NewDashboardCache(rdb, cfg.DashboardCacheTTL())
		reportUC = reportUC.WithCache(dash)
		clientUC = clientUC.WithSnapshots(dash)
		loanUC = loanUC.WithSnapshots(dash)
		sweepUC = sweepUC.WithSnapshots(dash)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	var mw []echo.MiddlewareFunc
	if rdb != nil {
		mw = append(mw, idemp.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL()))
	}
	httpadp.Register(e, httpadp.Handlers{
		Health:  httpadp.NewHandler(sqlDB.PingContext),
		Clients: httpadp.NewClientHandler(clientUC),
		Loans:   httpadp.NewLoanHandler(loanUC, reportUC),
		Reports: httpadp.NewReportHandler(reportUC, sweepUC),
	}, mw...)

	if cfg.SweepIntervalSecs > 0 {
		sw := ucDelinquency.NewSweeper(sweepUC, cfg.SweepInterval())
		sw.Start()
		defer sw.Stop()
	}

	addr := ":" + cfg.AppPort
	go func() {
		log.Printf("listening on %s (db=%s)", addr, cfg.DBDriver)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
