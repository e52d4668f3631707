package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	authapp "github.com/dwikikusuma/storefront/internal/auth/app"
	authkv "github.com/dwikikusuma/storefront/internal/auth/infra/kvstore"
	"github.com/dwikikusuma/storefront/internal/backend"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartkv "github.com/dwikikusuma/storefront/internal/cart/infra/kvstore"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	reviewapp "github.com/dwikikusuma/storefront/internal/review/app"
	"github.com/dwikikusuma/storefront/internal/storage"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/sqlite"
)

// app holds the wired services for one CLI invocation.
type app struct {
	cfg config.Config
	log *slog.Logger
	out io.Writer
	db  *sql.DB

	session  *authapp.Service
	cart     *cartapp.Service
	catalog  *catalogapp.Service
	orders   *orderapp.Service
	checkout *checkoutapp.Service
	reviews  *reviewapp.Service
}

func newApp(ctx context.Context, cfg config.Config, log *slog.Logger, out io.Writer) (*app, error) {
	db, err := sqlite.Open(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, fmt.Errorf("open local state: %w", err)
	}

	local := storage.NewSQLiteStore(db, storage.NamespaceLocal)
	sessionScoped := storage.NewSQLiteStore(db, storage.NamespaceSession)

	api := backend.New(backend.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.HTTPTimeout}, log)

	session := authapp.NewService(ctx, api, authkv.NewSessionStore(local, sessionScoped, log), log)
	cart := cartapp.NewService(ctx, cartkv.NewCartRepo(local, log), log)

	return &app{
		cfg:      cfg,
		log:      log,
		out:      out,
		db:       db,
		session:  session,
		cart:     cart,
		catalog:  catalogapp.NewService(api, cfg.RelatedLimit, log),
		orders:   orderapp.NewService(api, log),
		checkout: checkoutapp.NewService(adapter.NewCartServiceReader(cart), api, log),
		reviews:  reviewapp.NewService(api, api, log),
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn("close local state", slog.Any("err", err))
	}
}
