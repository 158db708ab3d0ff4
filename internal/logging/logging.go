package logging

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const filePerm = 0o644

const timestampFormat = "2006-01-02 15:04:05"

// New builds the operational JSON logger. When path is non-empty the
// log is appended to that file; otherwise it goes to stderr. The
// returned closer releases the file and is a no-op for stderr.
func New(path string) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: timestampFormat,
	})

	if path == "" {
		logger.SetOutput(os.Stderr)

		return logger, func() error { return nil }, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, filePerm)
	if err != nil {
		return nil, nil, fmt.Errorf("open struct log file %q: %w", path, err)
	}

	logger.SetOutput(file)

	return logger, file.Close, nil
}
