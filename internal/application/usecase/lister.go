package usecase

import (
	"context"
	"net/http"

	"mappins/internal/domain/model"
	"mappins/internal/domain/repository/blobstore"
	"mappins/pkg/logger"
)

// Lister implements the Lister abstraction over the stored pin collection.
type Lister struct {
	store blobstore.Store
	key   string
}

// NewLister creates a new Lister usecase.
func NewLister(store blobstore.Store, cfg Config) *Lister {
	cfg = cfg.WithDefaults()

	return &Lister{
		store: store,
		key:   cfg.Key,
	}
}

// ListPins returns every stored pin in insertion order.
func (l *Lister) ListPins(ctx context.Context) ([]model.Pin, int, error) {
	pins, err := loadCollection(ctx, l.store, l.key)
	if err != nil {
		logger.Error("failed to load pins", "err", err)

		return nil, http.StatusInternalServerError, err
	}

	return pins, http.StatusOK, nil
}
