// Package config loads and writes the harness's TOML configuration,
// covering the tracker's tuning knobs and the ambient concerns
// (logging, event log, telemetry publisher, synthetic source feed).
// The core tracking packages take their parameters as plain Go structs
// and never read this package directly — only the command layer does.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoggingLevel mirrors slog's level names as a TOML-friendly string,
// replacing the teacher's unused orsinium-labs/enum-based enum with a
// plain constant set consistent with how the rest of this package
// already models string enums.
type LoggingLevel string

const (
	LoggingLevelDebug LoggingLevel = "debug"
	LoggingLevelInfo  LoggingLevel = "info"
	LoggingLevelWarn  LoggingLevel = "warn"
	LoggingLevelError LoggingLevel = "error"
)

// SourceType names a kind of detection feed. The harness's feed
// generates synthetic detections whatever this is set to.
type SourceType string

const (
	SourceTypeSynthetic SourceType = "synthetic"
	SourceTypeFile      SourceType = "file"
)

// ConfigFile is the root of the TOML document.
type ConfigFile struct {
	Tracker  TrackerConfig
	Logging  LoggingConfig
	EventLog EventLogConfig `toml:"event_log"`
	MQTT     MQTTConfig
	Source   SourceConfig
	Stat     StatConfig
}

// TrackerConfig maps directly onto pkg/tracker.Config.
type TrackerConfig struct {
	MaxIOUDistance   float64 `toml:"max_iou_distance"`
	MaxAge           uint    `toml:"max_age"`
	MinHits          uint    `toml:"min_hits"`
	UseOptimalSolver bool    `toml:"use_optimal_solver"`
}

type LoggingConfig struct {
	Level LoggingLevel
}

// EventLogConfig points at the SQLite file the harness records track
// lifecycle transitions into.
type EventLogConfig struct {
	Path string
}

// MQTTConfig configures the telemetry publisher sink.
type MQTTConfig struct {
	Broker   string
	ClientID string `toml:"client_id"`
	Topic    string
}

// SourceConfig configures the synthetic detection feed. Type and Path
// are parsed but not consulted by the feed; no file is read.
type SourceConfig struct {
	Type            SourceType
	Path            string
	FrameIntervalMs uint `toml:"frame_interval_ms"`
	ObjectCount     uint `toml:"object_count"`
}

// StatConfig controls the rolling latency/track-count aggregator.
type StatConfig struct {
	PeriodSec uint `toml:"period_sec"`
}

// Default returns the configuration the harness ships with: spec
// default tracker tuning, info logging, a local event log file, a
// localhost MQTT broker, and a four-object synthetic feed.
func Default() *ConfigFile {
	return &ConfigFile{
		Tracker: TrackerConfig{
			MaxIOUDistance:   0.7,
			MaxAge:           30,
			MinHits:          3,
			UseOptimalSolver: false,
		},
		Logging: LoggingConfig{
			Level: LoggingLevelInfo,
		},
		EventLog: EventLogConfig{
			Path: "mottrack.db",
		},
		MQTT: MQTTConfig{
			Broker:   "tcp://127.0.0.1:1883",
			ClientID: "mottrack",
			Topic:    "mottrack/tracks",
		},
		Source: SourceConfig{
			Type:            SourceTypeSynthetic,
			FrameIntervalMs: 33,
			ObjectCount:     4,
		},
		Stat: StatConfig{
			PeriodSec: 5,
		},
	}
}

// Unmarshal reads and parses the TOML file at filePath.
func Unmarshal(filePath string) (*ConfigFile, error) {
	configFile := new(ConfigFile)
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", filePath, err)
	}
	if err := toml.Unmarshal(data, configFile); err != nil {
		return nil, fmt.Errorf("unable to unmarshal %s: %w", filePath, err)
	}
	return configFile, nil
}

// CreateDefault writes Default() to filePath as TOML, for bootstrapping
// a fresh deployment's config file.
func CreateDefault(filePath string) error {
	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("unable to marshal default config: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("unable to write %s: %w", filePath, err)
	}
	return nil
}
