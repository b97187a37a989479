// Package logging builds the command-line logger.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// GetLevel parses a level name. The empty string means warn, so renders stay
// quiet unless asked.
func GetLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "", "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.WarnLevel, fmt.Errorf("invalid log level: %v", level)
	}
}

// GetFormatter returns the formatter for text, json or json-pretty.
func GetFormatter(format string) (logrus.Formatter, error) {
	switch format {
	case "", "text":
		return &logrus.TextFormatter{DisableTimestamp: true}, nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	case "json-pretty":
		return &logrus.JSONFormatter{PrettyPrint: true}, nil
	default:
		return nil, fmt.Errorf("invalid log format: %v", format)
	}
}

// Configure sets the output, level and formatter of l.
func Configure(l *logrus.Logger, w io.Writer, level, format string) error {
	lvl, err := GetLevel(level)
	if err != nil {
		return err
	}
	f, err := GetFormatter(format)
	if err != nil {
		return err
	}
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(f)
	return nil
}
