// Package storage provides the top-level StorageManager over the single
// BadgerHold data directory.
package storage

import (
	"fmt"

	"github.com/skundu/trademind/internal/common"
	"github.com/skundu/trademind/internal/interfaces"
	"github.com/skundu/trademind/internal/storage/badger"
)

// Manager implements interfaces.StorageManager.
type Manager struct {
	store       *badger.Store
	watchlists  interfaces.WatchlistStorage
	preferences interfaces.PreferenceStorage
	logger      *common.Logger
}

// NewManager opens the BadgerHold store and wires the storage implementations.
func NewManager(logger *common.Logger, config *common.Config) (*Manager, error) {
	store, err := badger.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	logger.Info().
		Str("path", config.Storage.Path).
		Msg("Storage manager initialized")

	return &Manager{
		store:       store,
		watchlists:  badger.NewWatchlistStorage(store, logger),
		preferences: badger.NewPreferenceStorage(store, logger),
		logger:      logger,
	}, nil
}

func (m *Manager) WatchlistStorage() interfaces.WatchlistStorage {
	return m.watchlists
}

func (m *Manager) PreferenceStorage() interfaces.PreferenceStorage {
	return m.preferences
}

// Close closes the underlying store.
func (m *Manager) Close() error {
	return m.store.Close()
}

// Ensure Manager implements StorageManager
var _ interfaces.StorageManager = (*Manager)(nil)
