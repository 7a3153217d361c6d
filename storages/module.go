package storages

import (
	"context"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/logs"
)

type Module struct {
	dscope.Module
}

// DBPath is the SQLite file that search trials are saved to. Empty disables saving.
type DBPath string

func (Module) DBPath() DBPath {
	return ""
}

type SaveSignals func(ctx context.Context, signals []Signal) error

func (Module) SaveSignals(
	path DBPath,
	logger logs.Logger,
) SaveSignals {
	open := sync.OnceValues(func() (*DB, error) {
		return Open(context.Background(), string(path))
	})
	return func(ctx context.Context, signals []Signal) error {
		if path == "" || len(signals) == 0 {
			return nil
		}
		db, err := open()
		if err != nil {
			return err
		}
		if err := db.Update(ctx, func(tx Tx) error {
			for _, signal := range signals {
				if err := InsertSignal(ctx, tx, signal); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}
		logger.DebugContext(ctx, "saved signals",
			"path", path,
			"count", len(signals),
		)
		return nil
	}
}
