package pinclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mappins/internal/domain/dto"
	"mappins/internal/domain/model"
	"mappins/pkg/utils"
)

// DefaultMessage replaces a blank message, as the browser client does.
const DefaultMessage = "No message"

const pinsPath = "/api/pins"

type Pin = model.Pin

// APIError is a non-2xx answer from the pin endpoint.
type APIError struct {
	Status  int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("pin endpoint returned %d: %s: %s", e.Status, e.Message, e.Detail)
	}

	return fmt.Sprintf("pin endpoint returned %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	now     func() time.Time
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

// List returns every stored pin in insertion order.
func (c *Client) List(ctx context.Context) ([]Pin, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pinsPath, nil)
	if err != nil {
		return nil, err
	}

	var resp dto.ListPinsResponse
	if err := c.do(req, http.StatusOK, &resp); err != nil {
		return nil, err
	}

	if resp.Pins == nil {
		return []Pin{}, nil
	}

	return resp.Pins, nil
}

// Add stores a pin at lat/lng stamped with the current time.
func (c *Client) Add(ctx context.Context, lat, lng float64, message string) (Pin, error) {
	if strings.TrimSpace(message) == "" {
		message = DefaultMessage
	}

	body, err := json.Marshal(dto.AddPinRequest{
		Lat:       &lat,
		Lng:       &lng,
		Message:   message,
		Timestamp: utils.FormatTimestamp(c.now()),
	})
	if err != nil {
		return Pin{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pinsPath, bytes.NewReader(body))
	if err != nil {
		return Pin{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp dto.AddPinResponse
	if err := c.do(req, http.StatusCreated, &resp); err != nil {
		return Pin{}, err
	}

	return resp.Pin, nil
}

func (c *Client) do(req *http.Request, want int, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != want {
		var e dto.ErrorResponse
		_ = json.NewDecoder(res.Body).Decode(&e)
		if e.Error == "" {
			e.Error = http.StatusText(res.StatusCode)
		}

		return &APIError{Status: res.StatusCode, Message: e.Error, Detail: e.Message}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
