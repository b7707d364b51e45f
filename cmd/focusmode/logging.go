package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
)

// setupLogger points logger at path. The terminal belongs to the UI, so an
// empty path discards everything.
func setupLogger(logger *logrus.Logger, path string, debug bool) (io.Closer, error) {
	logger.SetOutput(io.Discard)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	if path == "" {
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	logger.AddHook(&writer.Hook{
		Writer:    f,
		LogLevels: logrus.AllLevels,
	})
	return f, nil
}
