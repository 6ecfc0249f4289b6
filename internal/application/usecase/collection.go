package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mappins/internal/domain/model"
	"mappins/internal/domain/repository/blobstore"
)

// loadCollection reads the stored document. A key that was never written is an empty
// collection, not an error.
func loadCollection(ctx context.Context, store blobstore.Store, key string) (model.Collection, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return model.Collection{}, nil
		}

		return nil, err
	}

	var pins model.Collection
	if err := json.Unmarshal(data, &pins); err != nil {
		return nil, fmt.Errorf("decode pin collection: %w", err)
	}

	if pins == nil {
		pins = model.Collection{}
	}

	return pins, nil
}

func saveCollection(ctx context.Context, store blobstore.Store, key string, pins model.Collection) error {
	data, err := json.Marshal(pins)
	if err != nil {
		return fmt.Errorf("encode pin collection: %w", err)
	}

	return store.Set(ctx, key, data)
}
