// Package logger holds the process-wide logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It is usable before Init, at info level.
var Log = logrus.New()

// Init configures Log from the environment. LOG_LEVEL picks the level
// (default "info", forced to debug when debug is set) and LOG_FORMAT=json
// switches to JSON output.
func Init(debug bool) {
	InitTo(os.Stdout, debug)
}

// InitTo is Init writing to out
func InitTo(out io.Writer, debug bool) {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if debug {
		level = logrus.DebugLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	Log.SetOutput(out)
}
