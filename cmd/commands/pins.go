package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mappins/pkg/pinclient"
)

const clientTimeout = 10 * time.Second

// HandleList prints every pin stored behind the given endpoint.
func HandleList(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("base url expected\nuse help command for more information"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
	defer cancel()

	pins, err := pinclient.New(args[2], clientTimeout).List(ctx)
	if err != nil {
		ExitOnError(err)
	}

	now := time.Now()
	for _, pin := range pins {
		fmt.Printf("%s  (%.5f, %.5f)  %s  [%s]\n", pin.ID, pin.Lat, pin.Lng, pin.Message, //nolint
			pinclient.RelativeTime(pin.Timestamp, now))
	}
	fmt.Printf("%d pins\n", len(pins)) //nolint
}

// HandleAdd stores one pin through the given endpoint.
func HandleAdd(args []string) {
	if len(args) < 5 {
		ExitOnError(errors.New("base url, lat and lng expected\nuse help command for more information"))
	}

	lat, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		ExitOnError(fmt.Errorf("invalid lat: %w", err))
	}

	lng, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		ExitOnError(fmt.Errorf("invalid lng: %w", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
	defer cancel()

	pin, err := pinclient.New(args[2], clientTimeout).Add(ctx, lat, lng, strings.Join(args[5:], " "))
	if err != nil {
		ExitOnError(err)
	}

	fmt.Printf("added %s at (%.5f, %.5f): %s\n", pin.ID, pin.Lat, pin.Lng, pin.Message) //nolint
}
