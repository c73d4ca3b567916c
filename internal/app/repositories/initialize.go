package repositories

import (
	"context"
	"fmt"

	"github.com/oguzkose/resourcehub/internal/kvstore"
)

// EnsureCollections writes an empty snapshot under the mutable collection
// keys that do not exist yet, so every later read sees a well-formed list.
// Reference collections are left to the seeder.
func EnsureCollections(ctx context.Context, store kvstore.Store) error {
	for _, key := range []string{KeyUsers, KeyResources} {
		raw, err := store.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to check collection %s: %w", key, err)
		}
		if raw != nil {
			continue
		}
		if err := store.Set(ctx, key, []byte(emptyList)); err != nil {
			return err
		}
	}
	return nil
}
