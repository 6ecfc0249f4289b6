package abstraction

import (
	"context"

	"mappins/internal/domain/dto"
	"mappins/internal/domain/model"
)

// Adder defines the interface for appending a pin to the shared collection.
type Adder interface {
	AddPin(ctx context.Context, req dto.AddPinRequest) (model.Pin, int, error)
}
