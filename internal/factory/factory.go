package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/commonsapp/commons/internal/dependencies/clock"
	"github.com/commonsapp/commons/internal/services/account"
	"github.com/commonsapp/commons/internal/services/chat"
	"github.com/commonsapp/commons/internal/services/community"
	"github.com/commonsapp/commons/internal/services/session"
	"github.com/commonsapp/commons/internal/storage"
	"github.com/commonsapp/commons/internal/storage/memory"
	redisstorage "github.com/commonsapp/commons/internal/storage/redis"
	sqlitestorage "github.com/commonsapp/commons/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeSQLite = "sqlite"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Store storage.Store
	Clock clock.Clock

	Accounts    *account.Service
	Communities *community.Service
	Sessions    *session.Manager
	Chat        *chat.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "sqlite" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// SQLiteConfig holds database settings (required if StorageType is "sqlite")
	SQLiteConfig *sqlitestorage.Config
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired, loading
// persisted state (including any saved session) from the selected backend
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	clk := clock.New()

	accounts, err := account.New(ctx, store, clk, logger)
	if err != nil {
		return nil, err
	}

	communities, err := community.New(ctx, store, clk, logger)
	if err != nil {
		return nil, err
	}

	sessions := session.New(ctx, store, accounts, logger)

	return &App{
		Store:       store,
		Clock:       clk,
		Accounts:    accounts,
		Communities: communities,
		Sessions:    sessions,
		Chat:        chat.New(clk),
	}, nil
}

// Close releases the storage backend if it holds external resources
func (a *App) Close() error {
	if closer, ok := a.Store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func newStore(cfg Config) (storage.Store, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeSQLite:
		if cfg.SQLiteConfig == nil {
			return nil, errors.New("SQLiteConfig required when StorageType is sqlite")
		}
		return sqlitestorage.New(*cfg.SQLiteConfig)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'sqlite' or 'redis'")
	}
}
