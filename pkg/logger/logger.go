// pkg/logger/logger.go
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. It is usable before Init, so packages
// and tests can log without setup.
var Log = logrus.New()

// Init configures the global logger from the environment. Call once from main.
//
//	LOG_LEVEL  - logrus level name, "info" by default ("debug" shows rejected turns)
//	LOG_FORMAT - "json" for machine-readable output, colored text otherwise
func Init() {
	Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Configure applies level, format and output to the global logger.
func Configure(logLevel, logFormat string, out io.Writer) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(logFormat) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}
	Log.SetOutput(out)
}
