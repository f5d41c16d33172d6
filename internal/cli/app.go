package cli

import (
	"fmt"
	"path/filepath"

	"github.com/vylia99/contactbook/internal/domain"
	"github.com/vylia99/contactbook/internal/infra/bookstore"
	"github.com/vylia99/contactbook/internal/infra/configfile"
	"github.com/vylia99/contactbook/internal/ports"
)

// appCtx wires config and store for one invocation.
type appCtx struct {
	cfg     domain.Config
	dataDir string
	store   ports.BookStore
}

func openApp(flags *rootFlags) (*appCtx, error) {
	base := flags.dataDir
	if base == "" {
		def, err := configfile.DefaultDataDir()
		if err != nil {
			return nil, err
		}
		base = def
	}

	cfg, err := configfile.Load(base)
	if err != nil {
		return nil, err
	}

	// Flags win over the config file.
	if flags.storage != "" {
		kind := domain.StorageKind(flags.storage)
		if kind != domain.StorageJSON && kind != domain.StorageSQLite {
			return nil, fmt.Errorf("unknown storage %q (expected json|sqlite)", flags.storage)
		}
		cfg.Storage = kind
	}

	dataDir := base
	if flags.dataDir == "" && cfg.Paths.DataDir != "" {
		dataDir = cfg.Paths.DataDir
	}

	bookPath := filepath.Join(dataDir, cfg.BookFileName())

	var store ports.BookStore
	if cfg.Storage == domain.StorageSQLite {
		store = bookstore.NewSQLiteStore(bookPath)
	} else {
		store = bookstore.NewJSONStore(bookPath)
	}

	return &appCtx{cfg: cfg, dataDir: dataDir, store: store}, nil
}
