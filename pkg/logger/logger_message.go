package logger

import (
	"encoding/json"
	"time"
)

// LoggerMessage is the wire shape of a log line forwarded to an ops queue.
type LoggerMessage struct {
	Service   string    `json:"service"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (lm LoggerMessage) Serialize() ([]byte, error) {
	return json.Marshal(lm)
}
