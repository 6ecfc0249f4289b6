package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mappins/config"
	"mappins/internal/domain/model"
	brokerRepository "mappins/internal/domain/repository/broker"
	"mappins/internal/infrastructure/broker"
	"mappins/pkg/logger"
	"mappins/pkg/pinclient"
)

// HandleEvents prints pin-added events until interrupted.
func HandleEvents(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var receiver brokerRepository.Receiver
	switch cfg.BrokerConfig.Driver {
	case broker.DriverRedis:
		client, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer client.Close()

		receiver = broker.NewReceiver(client)

	case broker.DriverKafka:
		r, err := broker.NewKafkaReceiver(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer r.Close()

		receiver = r

	default:
		ExitOnError(fmt.Errorf("broker driver %q has no events to read", cfg.BrokerConfig.Driver))
	}

	hostname, _ := os.Hostname()
	messages, err := receiver.Messages(ctx, fmt.Sprintf("events-%s-%d", hostname, os.Getpid()))
	if err != nil {
		ExitOnError(err)
	}

	for msg := range messages {
		var pin model.Pin
		if err := json.Unmarshal([]byte(msg.Body()), &pin); err != nil {
			logger.Error("invalid pin event", "err", err)
		} else {
			fmt.Printf("%s  (%.5f, %.5f)  %s  [%s]\n", pin.ID, pin.Lat, pin.Lng, pin.Message, //nolint
				pinclient.RelativeTime(pin.Timestamp, time.Now()))
		}

		if err := msg.Ack(); err != nil {
			logger.Error("failed to ack pin event", "err", err)
		}
	}
}
