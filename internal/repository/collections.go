package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"talent-match/internal/storage"
)

// Every logical mutation below is read whole collection, modify in memory,
// write whole collection back. Records keep insertion order; insertion order
// is creation order.

func readCollection[T any](ctx context.Context, st storage.Store, key string) ([]T, error) {
	b, err := st.Read(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if len(b) == 0 {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, nil
}

func writeCollection[T any](ctx context.Context, st storage.Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := st.Write(ctx, key, b); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func appendRecord[T any](ctx context.Context, st storage.Store, key string, rec T) error {
	records, err := readCollection[T](ctx, st, key)
	if err != nil {
		return err
	}
	return writeCollection(ctx, st, key, append(records, rec))
}

func countCollection(ctx context.Context, st storage.Store, key string) (int, error) {
	records, err := readCollection[json.RawMessage](ctx, st, key)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
