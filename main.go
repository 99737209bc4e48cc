package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	v1 "github.com/budget-buddy/backend/internal/controllers/v1"
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/models"
	"github.com/budget-buddy/backend/internal/observer"
	"github.com/budget-buddy/backend/internal/report"
	"github.com/budget-buddy/backend/internal/router"
	"github.com/budget-buddy/backend/internal/savings"
	"github.com/budget-buddy/backend/pkg/db"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

func main() {
	// A missing .env file is fine, the environment is used as is
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Amounts are JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true

	apiURL, err := url.Parse(getenv("API_URL", "http://localhost:8080"))
	if err != nil {
		log.Fatal().Msgf("API_URL is not a valid URL: %s", err)
	}

	symbol, err := report.CurrencySymbol(language.English, getenv("CURRENCY", "INR"))
	if err != nil {
		log.Fatal().Msgf("CURRENCY is not a valid ISO 4217 code: %s", err)
	}

	// Create data directory
	dataDir := getenv("DATA_DIR", filepath.Join(".", "data"))
	err = os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database. The sqlite path is ignored when DB_HOST is set.
	database, err := db.Connect(filepath.Join(dataDir, "gorm.db"))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	repo := models.NewRepository(database)
	ledgerSnapshot, savingsSnapshot, err := repo.Load()
	if err != nil {
		log.Fatal().Msgf("could not load stored data: %s", err)
	}

	metrics, err := observer.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	store := ledger.New(
		ledger.WithPersister(repo),
		ledger.WithLogger(log.Logger),
		ledger.WithObserver(observer.NewLogger(log.Logger)),
		ledger.WithObserver(metrics),
	)
	metrics.Attach(store)

	if err := store.Restore(ledgerSnapshot); err != nil {
		log.Fatal().Msgf("stored ledger is inconsistent: %s", err)
	}
	metrics.Refresh(store)

	bank := savings.New(store, savings.WithPersister(repo), savings.WithLogger(log.Logger))
	if err := bank.Restore(savingsSnapshot); err != nil {
		log.Fatal().Msgf("stored savings are inconsistent: %s", err)
	}

	r, teardown, err := router.Config(apiURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(v1.Controller{
		Store:     store,
		Bank:      bank,
		Formatter: report.NewFormatter(language.English, symbol),
		Version:   router.Version,
	}, repo, r.Group("/"))

	server := &http.Server{
		Addr:              ":" + getenv("PORT", "8080"),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("address", server.Addr).Str("version", router.Version).Msg("listening")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Msg(err.Error())
	}

	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
