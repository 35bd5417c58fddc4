package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/corvid-vision/mottrack/pkg/config"
	"github.com/corvid-vision/mottrack/pkg/track"

	mqtt "github.com/soypat/natiu-mqtt"
)

// telemetryPublisher connects to the configured broker once and
// publishes a JSON snapshot of the currently confirmed tracks on
// snapshots, until ctx is cancelled. Grounded on the teacher's own
// mqtt.go connection setup, completed with an actual publish call.
func telemetryPublisher(
	ctx context.Context,
	parent_logger *slog.Logger,
	cfg config.MQTTConfig,
	snapshots <-chan []*track.ExportedTrack,
) error {
	logger := parent_logger.With("coroutine", "telemetry")

	client := mqtt.NewClient(mqtt.ClientConfig{
		Decoder: mqtt.DecoderNoAlloc{UserBuffer: make([]byte, 2048)},
		OnPub: func(pubHead mqtt.Header, varPub mqtt.VariablesPublish, r io.Reader) error {
			message, err := io.ReadAll(r)
			if err != nil {
				return err
			}
			logger.Info("Received", "header", pubHead.String(), "message", message)
			return nil
		},
	})

	address, ok := strings.CutPrefix(cfg.Broker, "tcp://")
	if !ok {
		return fmt.Errorf("%w: broker address %q must use the tcp:// scheme", ERR_BAD_MQTT_BROKER, cfg.Broker)
	}
	connection, err := net.Dial("tcp", address)
	if err != nil {
		return fmt.Errorf("%w: %w", ERR_BAD_MQTT_BROKER, err)
	}

	connect_ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	err = client.Connect(connect_ctx, connection, &mqtt.VariablesConnect{
		ClientID: []byte(cfg.ClientID),
		Username: []byte(cfg.ClientID),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ERR_BAD_MQTT_BROKER, err)
	}
	logger.Info("Connected", "broker", cfg.Broker)

	varPub := mqtt.VariablesPublish{
		TopicName: []byte(cfg.Topic),
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cancelled by context")
			return context.Canceled
		case snapshot := <-snapshots:
			payload, err := json.Marshal(snapshot)
			if err != nil {
				logger.Error("Can't marshal telemetry snapshot", "error", err)
				continue
			}
			if err := client.PublishPayload(mqtt.PublishFlags(0), varPub, payload); err != nil {
				logger.Warn("Can't publish telemetry snapshot", "error", err)
			}
		}
	}
}
