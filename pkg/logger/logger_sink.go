package logger

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Sink receives every log line emitted through a Logger instance.
type Sink func(msg string, level zerolog.Level, timestamp time.Time)

func AddSinkToLoggerInstance(loggerInstance *Logger, sinkFunction Sink) {
	loggerInstance.sink = sinkFunction
}

func (l *Logger) activateSinkFormatted(level zerolog.Level, format string, v ...interface{}) {
	if l.sink == nil {
		return
	}
	l.activateSink(fmt.Sprintf(format, v...), level)
}

func (l *Logger) activateSink(msg string, level zerolog.Level) {
	if l.sink != nil {
		l.sink(msg, level, time.Now().UTC())
	}
}
