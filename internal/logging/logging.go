// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/openkraft/reportkraft/internal/domain"
)

// Init applies the logging config. Diagnostics always go to out, which the
// CLI sets to stderr so that stdout carries only results.
func Init(cfg domain.LoggingConfig, out io.Writer) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}

	logrus.SetOutput(out)
}
