package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ai4s-oj/lyrio/internal/adapter/postgres"
	"github.com/ai4s-oj/lyrio/internal/adapter/postgres/fileref"
	"github.com/ai4s-oj/lyrio/internal/adapter/postgres/grant"
	"github.com/ai4s-oj/lyrio/internal/adapter/postgres/localized"
	pgproblem "github.com/ai4s-oj/lyrio/internal/adapter/postgres/problem"
	"github.com/ai4s-oj/lyrio/internal/adapter/postgres/problemfile"
	pgtag "github.com/ai4s-oj/lyrio/internal/adapter/postgres/tag"
	"github.com/ai4s-oj/lyrio/internal/config"
	"github.com/ai4s-oj/lyrio/internal/service/permission"
	"github.com/ai4s-oj/lyrio/internal/service/problem"
	"github.com/ai4s-oj/lyrio/internal/service/tag"
)

// App wires configuration, storage, and services. Transport layers embed
// it and expose the services they need.
type App struct {
	Config *config.Config
	Log    *slog.Logger
	Pool   *pgxpool.Pool

	Permission *permission.Resolver
	Problems   *problem.Service
	Tags       *tag.Service
}

// New builds the full dependency graph on top of an existing pool.
func New(cfg *config.Config, log *slog.Logger, pool *pgxpool.Pool) *App {
	txm := postgres.NewTxManager(pool)

	problems := pgproblem.New(pool)
	tags := pgtag.New(pool)
	files := problemfile.New(pool)
	contents := localized.New(pool)
	store := fileref.New(pool)
	grants := grant.New(pool)

	resolver := permission.NewResolver(permission.Policy{
		AllowOwnerManagePermission: cfg.Security.AllowOwnerManagePermission,
		AllowOwnerDeleteProblem:    cfg.Security.AllowOwnerDeleteProblem,
		AllowEveryoneCreateProblem: cfg.Security.AllowEveryoneCreateProblem,
	}, grants, grants)

	return &App{
		Config:     cfg,
		Log:        log,
		Pool:       pool,
		Permission: resolver,
		Problems:   problem.NewService(log, problems, tags, files, contents, store, grants, txm),
		Tags:       tag.NewService(log, tags, contents, txm),
	}
}

// Bootstrap loads configuration, builds the logger and pool, and wires the
// application. The caller owns the returned App's pool.
func Bootstrap(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	log.Info("application wired",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	return New(cfg, log, pool), nil
}

// Close releases the application's resources.
func (a *App) Close() {
	a.Pool.Close()
}
