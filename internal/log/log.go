// Package log provides the shared logger for memutils diagnostics.
//
// The level is controlled by the MEMUTILS_LOGLEVEL environment variable
// (error, warn, info, debug). The default is warn: this library sits on
// allocation hot paths and must stay quiet unless asked not to.
package log

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stderr)
	switch strings.ToLower(os.Getenv("MEMUTILS_LOGLEVEL")) {
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	case "info":
		log.SetLevel(logrus.InfoLevel)
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}
}

// Get returns the process-wide memutils logger.
func Get() *logrus.Logger {
	return log
}
