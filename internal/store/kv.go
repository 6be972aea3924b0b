package store

import (
	"context"
	"fmt"

	"github.com/abhisek/skillforge/ent"
	"github.com/abhisek/skillforge/ent/progressblob"
)

// EntKV is the SQLite-backed key/value port. It satisfies the progress
// ledger's persistence interface: Get returns (nil, nil) for an absent
// key, and Set upserts durably before returning.
type EntKV struct {
	client *ent.Client
}

// Get returns the stored value for key, or (nil, nil) if absent.
func (kv *EntKV) Get(ctx context.Context, key string) ([]byte, error) {
	row, err := kv.client.ProgressBlob.Query().
		Where(progressblob.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return row.Value, nil
}

// Set stores the value under key, overwriting any prior value.
func (kv *EntKV) Set(ctx context.Context, key string, value []byte) error {
	err := kv.client.ProgressBlob.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(progressblob.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Remove deletes the value under key. Removing an absent key is not an
// error.
func (kv *EntKV) Remove(ctx context.Context, key string) error {
	_, err := kv.client.ProgressBlob.Delete().
		Where(progressblob.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
