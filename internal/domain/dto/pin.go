package dto

import "mappins/internal/domain/model"

// AddPinRequest is the POST body. Coordinates are pointers so that an explicit 0 can be
// told apart from an absent field.
type AddPinRequest struct {
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
}

type ListPinsResponse struct {
	Pins []model.Pin `json:"pins"`
}

type AddPinResponse struct {
	Message string    `json:"message"`
	Pin     model.Pin `json:"pin"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
