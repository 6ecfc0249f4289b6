package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"mappins/internal/application/usecase/abstraction"
	"mappins/internal/domain/dto"
	"mappins/internal/domain/model"
	"mappins/internal/presentation"
)

type PinsHandler struct {
	lister abstraction.Lister
	adder  abstraction.Adder
}

func NewPinsHandler(lister abstraction.Lister, adder abstraction.Adder) *PinsHandler {
	return &PinsHandler{
		lister: lister,
		adder:  adder,
	}
}

// Handle dispatches every method on the pins path.
func (h *PinsHandler) Handle(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodOptions:
		return h.HandleOptions(c)
	case http.MethodGet:
		return h.HandleList(c)
	case http.MethodPost:
		return h.HandleAdd(c)
	default:
		return h.HandleMethodNotAllowed(c)
	}
}

// HandleList handles GET /pins requests.
func (h *PinsHandler) HandleList(c echo.Context) error {
	pins, status, err := h.lister.ListPins(c.Request().Context())
	if err != nil {
		return c.JSON(status, dto.ErrorResponse{
			Error:   presentation.MsgInternalError,
			Message: err.Error(),
		})
	}

	if pins == nil {
		pins = []model.Pin{}
	}

	return c.JSON(http.StatusOK, dto.ListPinsResponse{Pins: pins})
}

// HandleAdd handles POST /pins requests.
func (h *PinsHandler) HandleAdd(c echo.Context) error {
	var req dto.AddPinRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: presentation.MsgInvalidBody})
	}

	pin, status, err := h.adder.AddPin(c.Request().Context(), req)
	if err != nil {
		if status == http.StatusBadRequest {
			return c.JSON(status, dto.ErrorResponse{Error: presentation.MsgInvalidPin})
		}

		return c.JSON(status, dto.ErrorResponse{
			Error:   presentation.MsgInternalError,
			Message: err.Error(),
		})
	}

	return c.JSON(status, dto.AddPinResponse{
		Message: presentation.MsgPinAdded,
		Pin:     pin,
	})
}

// HandleOptions answers preflight requests with an empty 200.
func (h *PinsHandler) HandleOptions(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func (h *PinsHandler) HandleMethodNotAllowed(c echo.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, dto.ErrorResponse{Error: presentation.MsgMethodNotAllowed})
}
