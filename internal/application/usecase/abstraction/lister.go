package abstraction

import (
	"context"

	"mappins/internal/domain/model"
)

// Lister defines the interface for reading the shared pin collection.
type Lister interface {
	ListPins(ctx context.Context) ([]model.Pin, int, error)
}
