package bootstrap

import (
	"errors"
	"log/slog"
	"strings"

	accountservice "inkwell/contexts/identity/account-service"
	bcryptadapter "inkwell/contexts/identity/account-service/adapters/bcrypt"
	accountpostgres "inkwell/contexts/identity/account-service/adapters/postgres"
	tokenadapter "inkwell/contexts/identity/account-service/adapters/token"
	blogservice "inkwell/contexts/publishing/blog-service"
	blogpostgres "inkwell/contexts/publishing/blog-service/adapters/postgres"
	"inkwell/internal/platform/config"
	"inkwell/internal/platform/db"
	"inkwell/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.TokenSecret) == "" {
		return nil, errors.New("TOKEN_SECRET is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := pg.Migrate(); err != nil {
		_ = pg.Close()
		return nil, err
	}

	accounts := accountservice.NewModule(accountservice.Dependencies{
		Profiles: accountpostgres.NewRepository(pg.DB, logger),
		Hasher:   bcryptadapter.Hasher{},
		Tokens:   tokenadapter.NewCodec([]byte(cfg.TokenSecret), cfg.TokenTTL),
		Logger:   logger,
	})
	blogs := blogservice.NewModule(blogservice.Dependencies{
		Posts:  blogpostgres.NewRepository(pg.DB, logger),
		Logger: logger,
	})

	server := httpserver.New(accounts, blogs, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run() error {
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a == nil {
		return nil
	}
	return a.postgres.Close()
}

func normalizeAddr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return ":8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
