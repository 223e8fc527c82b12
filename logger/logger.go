// Package logger builds the structured logger used by the tourplan CLI.
// Library packages (tsp, distance, store) never log; they return errors.
package logger

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tourplan/config"
)

// New returns a logrus logger writing to w.
//
// An unparsable level falls back to info. Format "json" emits one object per
// line with timestamp/level/message keys; anything else uses the text
// formatter with full timestamps.
func New(cfg config.LogConfig, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	return log
}
