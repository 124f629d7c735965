package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/classdesk/classdesk-backend/internal/config"
)

// Records stores individual JSON records under type-prefixed keys
// ("{kind}:{id}"). Records are write-once: Put overwrites unconditionally,
// but IDs are never reused so no record is ever rewritten in practice.
type Records struct {
	kv  KV
	log zerolog.Logger
}

// NewRecords creates a record store over the given backend.
func NewRecords(kv KV, log zerolog.Logger) *Records {
	return &Records{kv: kv, log: log}
}

// Put serializes v and writes it at the record key.
func (r *Records) Put(ctx context.Context, kind, id string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", kind, err)
	}
	return r.kv.Put(ctx, config.StoreKey.RecordKey(kind, id), string(data))
}

// Get reads the record at kind/id into dst. A missing key and a stored
// value that fails to decode both report (false, nil): an undecodable
// record reads as absent. Backend I/O errors are returned.
func (r *Records) Get(ctx context.Context, kind, id string, dst any) (bool, error) {
	key := config.StoreKey.RecordKey(kind, id)
	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		r.log.Debug().Str("key", key).Err(err).Msg("Undecodable record treated as absent")
		return false, nil
	}
	return true, nil
}
