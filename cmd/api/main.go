package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	httpadp "immofund-backend/internal/adapter/http"
	"immofund-backend/internal/adapter/middleware"
	"immofund-backend/internal/config"
	"immofund-backend/internal/infrastructure/cache"
	"immofund-backend/internal/infrastructure/logger"
	"immofund-backend/internal/infrastructure/scheduler"
	ucCatalog "immofund-backend/internal/usecase/catalog"
	ucInvestment "immofund-backend/internal/usecase/investment"
	"immofund-backend/internal/usecase/ledger"
	ucReservation "immofund-backend/internal/usecase/reservation"
	ucSale "immofund-backend/internal/usecase/sale"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	rdb, err := cache.OpenRedis(cache.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	reconciler := ledger.NewReconciler(st.uow, log, time.Minute)
	sched := scheduler.New(log)
	if cfg.ReconcileSchedule != "" {
		if err := sched.AddJob(cfg.ReconcileSchedule, reconciler); err != nil {
			return err
		}
	}
	sched.Start()
	defer sched.Stop()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Recover(), requestLogger(log))

	httpadp.Register(e, httpadp.Handlers{
		Health: httpadp.NewHandler(map[string]httpadp.Check{
			"store": st.check,
			"redis": func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		}),
		Catalog:      httpadp.NewCatalogHandler(ucCatalog.NewUsecase(st.uow, log), reconciler, log),
		Reservations: httpadp.NewReservationHandler(ucReservation.NewUsecase(st.uow, log), log),
		Investments:  httpadp.NewInvestmentHandler(ucInvestment.NewUsecase(st.uow, log), log),
		Sales:        httpadp.NewSaleHandler(ucSale.NewUsecase(st.uow, log), log),
	}, middleware.Auth([]byte(cfg.JWTSecret)), middleware.Idempotency(rdb, cfg.IdempotencyTTL(), log))

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.AppPort
		log.Info().Str("addr", addr).Str("store", cfg.StoreDriver).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	log = log.With().Str("component", "http").Logger()
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
