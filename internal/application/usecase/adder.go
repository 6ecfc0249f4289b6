package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"mappins/internal/domain/dto"
	"mappins/internal/domain/model"
	"mappins/internal/domain/repository/blobstore"
	"mappins/internal/domain/repository/broker"
	"mappins/pkg/logger"
	"mappins/pkg/utils"
)

// Adder appends pins to the stored collection.
//
// The read-modify-write cycle is not atomic: two concurrent AddPin calls may read the same
// collection and the later write replaces the earlier one, losing a pin.
type Adder struct {
	store            blobstore.Store
	publisher        broker.Publisher
	key              string
	maxPins          int
	maxMessageLength int
	now              func() time.Time
}

// NewAdder creates a new Adder usecase. publisher may be nil.
func NewAdder(store blobstore.Store, publisher broker.Publisher, cfg Config) *Adder {
	cfg = cfg.WithDefaults()

	return &Adder{
		store:            store,
		publisher:        publisher,
		key:              cfg.Key,
		maxPins:          cfg.MaxPins,
		maxMessageLength: cfg.MaxMessageLength,
		now:              time.Now,
	}
}

// AddPin validates req, stores it as a new pin and returns the stored pin.
func (a *Adder) AddPin(ctx context.Context, req dto.AddPinRequest) (model.Pin, int, error) {
	if req.Lat == nil || req.Lng == nil {
		return model.Pin{}, http.StatusBadRequest, ErrInvalidPin
	}

	now := a.now()
	pin := model.Pin{
		ID:        utils.NewPinID(now),
		Lat:       *req.Lat,
		Lng:       *req.Lng,
		Message:   utils.TruncateRunes(req.Message, a.maxMessageLength),
		Timestamp: req.Timestamp,
	}
	if !utils.IsTimestamp(pin.Timestamp) {
		pin.Timestamp = utils.FormatTimestamp(now)
	}

	pins, err := loadCollection(ctx, a.store, a.key)
	if err != nil {
		logger.Error("failed to load pins before append", "err", err)

		return model.Pin{}, http.StatusInternalServerError, err
	}

	pins = pins.Append(pin, a.maxPins)

	if err := saveCollection(ctx, a.store, a.key, pins); err != nil {
		logger.Error("failed to store pins", "err", err, "pin", pin.ID)

		return model.Pin{}, http.StatusInternalServerError, err
	}

	a.publish(ctx, pin)

	return pin, http.StatusCreated, nil
}

// publish announces the stored pin. The collection is already written, so a broker
// failure is only logged.
func (a *Adder) publish(ctx context.Context, pin model.Pin) {
	if a.publisher == nil {
		return
	}

	body, err := json.Marshal(pin)
	if err != nil {
		logger.Error("failed to encode pin event", "err", err, "pin", pin.ID)

		return
	}

	if err := a.publisher.Publish(ctx, string(body)); err != nil {
		logger.Error("failed to publish pin event", "err", err, "pin", pin.ID)
	}
}
