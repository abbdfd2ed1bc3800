// Package logging builds the structured loggers used by shell commands and
// HTTP middleware.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Settings controls logger level and output format.
type Settings struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// New returns a logger entry tagged with the service name.
//
// Format "json" emits one JSON object per line; anything else uses logrus text
// output, colored only when out is a terminal.
func New(service string, out io.Writer, settings Settings) (*logrus.Entry, error) {
	if out == nil {
		out = os.Stderr
	}
	level := strings.TrimSpace(settings.Level)
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", settings.Level, err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(parsed)
	switch strings.ToLower(strings.TrimSpace(settings.Format)) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: !isTerminal(out),
			FullTimestamp: true,
		})
	}
	return logger.WithField("service", strings.TrimSpace(service)), nil
}

// Discard returns a logger that drops every entry. Tests and nil-safe
// constructors use it as a default.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
