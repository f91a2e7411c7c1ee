package badger

import (
	"context"
	"fmt"

	"github.com/timshannon/badgerhold/v4"

	"github.com/skundu/trademind/internal/common"
)

// PreferenceEntry represents a key-value pair stored in BadgerDB.
type PreferenceEntry struct {
	Key   string `badgerhold:"key"`
	Value string
}

type preferenceStorage struct {
	store  *Store
	logger *common.Logger
}

// NewPreferenceStorage creates a new PreferenceStorage backed by BadgerHold.
func NewPreferenceStorage(store *Store, logger *common.Logger) *preferenceStorage {
	return &preferenceStorage{store: store, logger: logger}
}

func (s *preferenceStorage) Get(_ context.Context, key string) (string, error) {
	var entry PreferenceEntry
	err := s.store.db.Get(key, &entry)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return "", fmt.Errorf("preference '%s' not found", key)
		}
		return "", fmt.Errorf("failed to get preference '%s': %w", key, err)
	}
	return entry.Value, nil
}

func (s *preferenceStorage) Set(_ context.Context, key, value string) error {
	entry := PreferenceEntry{Key: key, Value: value}
	if err := s.store.db.Upsert(key, &entry); err != nil {
		return fmt.Errorf("failed to set preference '%s': %w", key, err)
	}
	return nil
}

func (s *preferenceStorage) Delete(_ context.Context, key string) error {
	err := s.store.db.Delete(key, PreferenceEntry{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete preference '%s': %w", key, err)
	}
	return nil
}

func (s *preferenceStorage) GetAll(_ context.Context) (map[string]string, error) {
	var entries []PreferenceEntry
	if err := s.store.db.Find(&entries, nil); err != nil {
		return nil, fmt.Errorf("failed to get all preferences: %w", err)
	}
	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		result[entry.Key] = entry.Value
	}
	return result, nil
}
