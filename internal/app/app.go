package app

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/metlab/inventory/config"
	"github.com/metlab/inventory/internal/db"
	"github.com/metlab/inventory/internal/services"
	"github.com/metlab/inventory/internal/store"
	"go.uber.org/zap"
)

// App wires the database, repositories and services together.
type App struct {
	Users  *services.UserService
	Ledger *services.LedgerService
	Config config.Config
	Logger *zap.Logger

	db *sqlx.DB
}

// New opens the database named in cfg and constructs both services.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	userRepo := store.NewUserRepository(dbConn)
	hasher := services.NewPasswordHasher(cfg.Auth.PasswordScheme)

	ledger := services.NewLedgerService(services.LedgerRepositories{
		Items:        store.NewItemRepository(dbConn),
		Categories:   store.NewCategoryRepository(dbConn),
		Suppliers:    store.NewSupplierRepository(dbConn),
		Transactions: store.NewTransactionRepository(dbConn),
		Reset:        store.NewResetRepository(dbConn),
	}, logger.Named("ledger"))

	logger.Debug("database ready", zap.String("path", cfg.Database.Path))

	return &App{
		Users:  services.NewUserService(userRepo, hasher, logger.Named("users")),
		Ledger: ledger,
		Config: cfg,
		Logger: logger,
		db:     dbConn,
	}, nil
}

// Close releases the database.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
