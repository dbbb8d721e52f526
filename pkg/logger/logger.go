// Package logger provides the shared application logger.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger instance. Init must be called once at startup.
var Log = logrus.New()

// Init configures the shared logger from the given level string.
func Init(level string) {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
		Log.WithField("level", level).Warn("Unknown log level, falling back to info")
	}
	Log.SetLevel(parsed)
}
