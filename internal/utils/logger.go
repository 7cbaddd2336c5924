package utils

import (
	"fmt" // For error wrapping

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// SetupLogger configures the package-level logrus logger
func SetupLogger(isProd bool, level string) error {
	lvl, err := logrus.ParseLevel(level) // Parse level name such as "debug" or "info"
	if err != nil {
		return fmt.Errorf("parsing LOG_LEVEL: %w", err)
	}
	logrus.SetLevel(lvl)
	if isProd {
		logrus.SetFormatter(&logrus.JSONFormatter{}) // Machine-readable logs in production
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true}) // Readable logs in development
	}
	return nil
}
