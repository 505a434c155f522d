package rabbitmq

import (
	"fmt"
	"os"
	"time"

	"claims-processor/pkg/logger"

	"github.com/rs/zerolog"
)

// CreateRabbitmqLoggerSink forwards every log line to the given publisher.
// Publish failures go to stderr directly: routing them back through the
// logger would loop.
func CreateRabbitmqLoggerSink(publisher IRabbitmqPublisher, service string) logger.Sink {
	return func(msg string, level zerolog.Level, timestamp time.Time) {
		entry := logger.LoggerMessage{
			Service:   service,
			Level:     level.String(),
			Message:   msg,
			Timestamp: timestamp,
		}

		if err := publisher.Publish(entry); err != nil {
			fmt.Fprintf(os.Stderr, "log sink publish failed: %v\n", err)
		}
	}
}
