package logger

import (
	"io"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var logBufferedLogs func(io.Writer) error

// LogBufferedLogs writes any log lines emitted before logging was configured
// to the given writer. If the writer is nil the default console writer is
// used. This function does nothing once the buffer has been flushed.
func LogBufferedLogs(writer io.Writer) {
	if logBufferedLogs == nil {
		return
	}
	if writer == nil {
		writer = zerolog.NewConsoleWriter(defaultLogging)
	}

	if err := logBufferedLogs(writer); err != nil {
		log.Err(err).Msg("Failed to flush buffered log messages")
	}
	logBufferedLogs = nil
}

// bufferLogs returns an io.Writer for zerolog that holds log lines until
// LogBufferedLogs is called with the real log writer.
func bufferLogs() io.Writer {
	buffer := &bufferingLogWriter{}
	logBufferedLogs = buffer.writeLogs
	return buffer
}

type bufferingLogWriter struct {
	buffer [][]byte
	mu     sync.Mutex
}

var _ io.Writer = &bufferingLogWriter{}

func (b *bufferingLogWriter) Write(p []byte) (n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// make sure p isn't reused while it's being kept on the buffer
	p = slices.Clone(p)
	b.buffer = append(b.buffer, p)

	return len(p), nil
}

func (b *bufferingLogWriter) writeLogs(w io.Writer) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var errs error
	for _, line := range b.buffer {
		if _, err := w.Write(line); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	b.buffer = nil
	return errs
}
