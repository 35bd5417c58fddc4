package main

import (
	"errors"
)

var (
	ERR_BAD_CONFIG           error = errors.New("Bad config")
	ERR_BAD_EVENT_LOG        error = errors.New("Can't open event log")
	ERR_BAD_MQTT_BROKER      error = errors.New("Can't connect to MQTT broker")
	ERR_BAD_SOURCE           error = errors.New("Bad source configuration")
	ERR_CANCELLED_BY_CONTEXT error = errors.New("Cancelled via context")
	ERR_INTERRUPTED_BY_USER  error = errors.New("Interrupted by user")
)
