// Package logging sends log output to a file so it never lands on the
// terminal the UI is drawn on.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup points the standard logger at path, appending. The returned closer
// must be closed on exit. An empty path discards log output.
func Setup(path string) (io.Closer, error) {
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(logFile)
	return logFile, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
