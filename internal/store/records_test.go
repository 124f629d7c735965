package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestRecords() (*Records, *MemoryKV) {
	kv := NewMemoryKV()
	return NewRecords(kv, zerolog.Nop()), kv
}

func TestRecordsRoundtrip(t *testing.T) {
	ctx := context.Background()
	records, kv := newTestRecords()

	in := testRecord{ID: "abc123", Name: "Ana"}
	require.NoError(t, records.Put(ctx, "assignment", in.ID, in))

	// Stored under the type-prefixed key.
	raw, ok, err := kv.Get(ctx, "assignment:abc123")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"id":"abc123","name":"Ana"}`, raw)

	var out testRecord
	found, err := records.Get(ctx, "assignment", "abc123", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in, out)
}

func TestRecordsGetAbsent(t *testing.T) {
	ctx := context.Background()
	records, _ := newTestRecords()

	var out testRecord
	found, err := records.Get(ctx, "assignment", "nope", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRecordsUndecodableReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	records, kv := newTestRecords()

	require.NoError(t, kv.Put(ctx, "assignment:bad", "not json{"))

	var out testRecord
	found, err := records.Get(ctx, "assignment", "bad", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
