package util

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

const esc = 27

// clear the line and move the cursor up
var clear = fmt.Sprintf("%c[%dA%c[2K", esc, 1, esc)

// LiveTableWriter is a buffered writer that redraws its contents in place on
// the terminal, for watch-style table refreshes.
type LiveTableWriter struct {
	// Out is the writer to write the table to.
	Out io.Writer

	buf      bytes.Buffer
	mu       *sync.Mutex
	rowCount int
}

// NewLiveTableWriter returns a new LiveTableWriter with defaults.
func NewLiveTableWriter() *LiveTableWriter {
	return &LiveTableWriter{
		Out: io.Writer(os.Stdout),
		mu:  &sync.Mutex{},
	}
}

// Flush clears the previously drawn rows, writes out the buffered table and
// resets the buffer.
func (w *LiveTableWriter) Flush() error {
	if len(w.buf.Bytes()) == 0 {
		return nil
	}

	defer w.buf.Reset()
	w.clearRows()

	rows := 0
	for _, b := range w.buf.Bytes() {
		if b == '\n' {
			rows++
		}
	}
	w.rowCount = rows
	_, err := w.Out.Write(w.buf.Bytes())
	if err == nil {
		_, err = w.Out.Write([]byte("\n"))
		w.rowCount++
	}
	return err
}

// Write buffers the next table contents, flushing whatever came before.
func (w *LiveTableWriter) Write(buf []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.Flush()
	return w.buf.Write(buf)
}

func (w *LiveTableWriter) clearRows() {
	_, _ = fmt.Fprint(w.Out, strings.Repeat(clear, w.rowCount))
}
