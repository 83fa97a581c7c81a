package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/dadscape/diary-api/internal/config"
	"github.com/dadscape/diary-api/internal/infrastructure/database"
	"github.com/dadscape/diary-api/internal/infrastructure/providers"
	"github.com/dadscape/diary-api/internal/infrastructure/repository"
	"github.com/dadscape/diary-api/internal/present/rest"
	restmw "github.com/dadscape/diary-api/internal/present/rest/middleware"
	"github.com/dadscape/diary-api/internal/tracing"
	"github.com/dadscape/diary-api/internal/usecase"
)

func main() {
	seedPath := flag.String("seed", "", "path to a YAML seed fixture file applied after migration")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	conf := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := providers.NewDatabase(conf)
	if err != nil {
		slog.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := providers.MigrateDatabase(db); err != nil {
		slog.Error("failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("database ready", slog.String("path", conf.DatabasePath))

	if *seedPath != "" {
		seed, err := database.LoadSeedFile(*seedPath)
		if err != nil {
			slog.Error("failed to load seed file", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := database.ApplySeed(db, seed); err != nil {
			slog.Error("failed to apply seed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.Info("seed fixtures applied", slog.String("file", *seedPath))
	}

	if conf.EnableTrace {
		shutdown, err := tracing.Setup(ctx, conf.TraceEndpoint, "diaryd")
		if err != nil {
			slog.Error("failed to set up tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	diaryRepo := repository.NewDiaryRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	keyRepo := repository.NewAPIKeyRepository(db)
	configRepo := repository.NewConfigRepository(db)

	diaryUC := usecase.NewDiaryUsecase(diaryRepo)
	motdUC := usecase.NewMotdUsecase(configRepo)
	authUC := usecase.NewAuthUsecase(keyRepo)
	memberUC := usecase.NewMemberUsecase(memberRepo)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = rest.HTTPErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.Secure())
	corsConfig := echomw.CORSConfig{AllowOrigins: []string{conf.CORSOrigin}}
	if conf.CORSOrigin != "*" {
		corsConfig.AllowCredentials = true
	}
	e.Use(echomw.CORSWithConfig(corsConfig))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogMethod:  true,
		LogURI:     true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			slog.InfoContext(c.Request().Context(), "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	if conf.EnableTrace {
		e.Use(otelecho.Middleware("diaryd"))
	}

	authMW := restmw.NewAuthMiddleware(authUC)
	rankMW := restmw.NewRankMiddleware(memberUC, conf.MinAdminRank)
	limiter := restmw.RateLimiter(providers.NewRedis(conf), conf.RateLimitMax, conf.RateLimitWindow)

	handler := rest.NewHandler(diaryUC, motdUC)
	handler.RegisterRoutes(e, authMW, rankMW, limiter)

	go func() {
		if err := e.Start(":" + conf.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", slog.String("error", err.Error()))
			stop()
		}
	}()
	slog.Info("diary api listening", slog.String("port", conf.Port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	slog.Info("database connection closed")
}
