package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/classdesk/classdesk-backend/internal/config"
)

// Index maintains one insertion-ordered list of record IDs per record type,
// persisted as a JSON array under "index:{name}". It is the only listing
// mechanism: a record whose ID never reached its index is unreachable.
//
// Append is a read-modify-write. The backend's Update gives it
// check-and-set semantics, so concurrent creates cannot drop each other's
// IDs; the stored shape stays a plain JSON array either way.
type Index struct {
	kv  KV
	log zerolog.Logger
}

// NewIndex creates an index manager over the given backend.
func NewIndex(kv KV, log zerolog.Logger) *Index {
	return &Index{kv: kv, log: log}
}

// List returns the IDs in insertion order. An absent or undecodable index
// reads as empty.
func (ix *Index) List(ctx context.Context, name string) ([]string, error) {
	key := config.StoreKey.IndexKey(name)
	raw, ok, err := ix.kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		ix.log.Debug().Str("key", key).Err(err).Msg("Undecodable index treated as empty")
		return nil, nil
	}
	return ids, nil
}

// Append adds id to the index if not already present. Duplicate appends
// are no-ops, so retried creates never double-list a record.
func (ix *Index) Append(ctx context.Context, name, id string) error {
	key := config.StoreKey.IndexKey(name)
	return ix.kv.Update(ctx, key, func(current string, exists bool) (string, error) {
		var ids []string
		if exists {
			// An undecodable index restarts empty, same as List.
			_ = json.Unmarshal([]byte(current), &ids)
		}

		for _, existing := range ids {
			if existing == id {
				return "", ErrUnchanged
			}
		}

		data, err := json.Marshal(append(ids, id))
		if err != nil {
			return "", fmt.Errorf("marshal index %s: %w", name, err)
		}
		return string(data), nil
	})
}
