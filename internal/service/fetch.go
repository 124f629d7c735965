package service

import (
	"context"
	"sync"

	"github.com/classdesk/classdesk-backend/internal/store"
)

// fetchAll resolves the records named by ids concurrently, reassembling
// results in index order before any filtering or reversal. IDs that fail
// to resolve (missing or undecodable records) are dropped.
func fetchAll[T any](ctx context.Context, records *store.Records, kind string, ids []string) ([]T, error) {
	results := make([]*T, len(ids))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()

			var v T
			ok, err := records.Get(ctx, kind, id, &v)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			if ok {
				results[i] = &v
			}
		}(i, id)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	items := make([]T, 0, len(ids))
	for _, r := range results {
		if r != nil {
			items = append(items, *r)
		}
	}
	return items, nil
}
