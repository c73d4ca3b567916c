package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oguzkose/resourcehub/internal/kvstore"
	"github.com/oguzkose/resourcehub/internal/pkg/logger"
)

// loadCollection reads and decodes a whole collection snapshot. An absent key
// yields an empty collection.
func loadCollection[T any](ctx context.Context, store kvstore.Store, key string) ([]T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", key, err)
	}
	if raw == nil {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode collection %s: %w", key, err)
	}
	return items, nil
}

// saveCollection encodes and rewrites a whole collection snapshot, then
// refreshes the consolidated backup. The backup write is best-effort: a
// failure is logged but does not undo the primary write.
func saveCollection[T any](ctx context.Context, store kvstore.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}

	if err := store.Set(ctx, key, raw); err != nil {
		return err
	}

	if err := writeBackup(ctx, store); err != nil {
		logger.Warn().Err(err).Str("collection", key).Msg("Backup snapshot refresh failed")
	}
	return nil
}
