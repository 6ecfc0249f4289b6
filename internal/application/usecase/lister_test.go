package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mappins/internal/domain/model"
	"mappins/internal/domain/repository/blobstore"
)

func TestListPins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		stored         []byte
		storeErr       error
		expectedStatus int
		expectedPins   []model.Pin
		expectError    bool
	}{
		{
			name:           "nothing stored yet",
			storeErr:       blobstore.ErrNotFound,
			expectedStatus: http.StatusOK,
			expectedPins:   []model.Pin{},
		},
		{
			name:           "wrapped not found",
			storeErr:       errors.Join(errors.New("minio"), blobstore.ErrNotFound),
			expectedStatus: http.StatusOK,
			expectedPins:   []model.Pin{},
		},
		{
			name:           "stored null document",
			stored:         []byte("null"),
			expectedStatus: http.StatusOK,
			expectedPins:   []model.Pin{},
		},
		{
			name:           "stored pins keep order",
			stored:         []byte(`[{"id":"a","lat":1,"lng":2,"message":"x","timestamp":"t"},{"id":"b","lat":3,"lng":4,"message":"y","timestamp":"t"}]`),
			expectedStatus: http.StatusOK,
			expectedPins: []model.Pin{
				{ID: "a", Lat: 1, Lng: 2, Message: "x", Timestamp: "t"},
				{ID: "b", Lat: 3, Lng: 4, Message: "y", Timestamp: "t"},
			},
		},
		{
			name:           "store failure",
			storeErr:       errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectError:    true,
		},
		{
			name:           "corrupt document",
			stored:         []byte("{not json"),
			expectedStatus: http.StatusInternalServerError,
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &MockStore{}
			store.On("Get", mock.Anything, DefaultKey).Return(tt.stored, tt.storeErr)

			pins, status, err := NewLister(store, Config{}).ListPins(context.Background())

			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectError {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPins, pins)
			store.AssertExpectations(t)
		})
	}
}
