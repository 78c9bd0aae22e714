package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"users-api/internal/config"
)

// New builds the process-wide logger from configuration. The logger is
// created once at startup and handed to every component that logs.
func New(cfg config.LogConfig) (*logrus.Logger, error) {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput is New writing to out instead of stdout
func NewWithOutput(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	switch cfg.Format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger, nil
}

// WithServerless attaches the Lambda function identity to every entry
func WithServerless(logger logrus.FieldLogger, sc *config.ServerlessConfig) logrus.FieldLogger {
	if sc == nil || !sc.IsLambda {
		return logger
	}

	return logger.WithFields(logrus.Fields{
		"function_name": sc.FunctionName,
		"region":        sc.Region,
		"stage":         sc.Stage,
	})
}
