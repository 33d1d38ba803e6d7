package logger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogMode selects the output encoding of the global logger.
type LogMode string

const (
	// LogModeDefault writes human-readable console lines to stderr.
	LogModeDefault LogMode = "default"
	// LogModeJSON writes structured JSON lines to stdout.
	LogModeJSON LogMode = "json"
	// LogModeCombined writes console lines to stderr and JSON to stdout.
	LogModeCombined LogMode = "combined"
)

var stderr = struct{ io.Writer }{os.Stderr}

func init() { //nolint:gochecknoinits // init with zerolog is idiomatic
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.CallerMarshalFunc = marshalCaller

	// Hold early log lines until the CLI has picked a mode.
	log.Logger = zerolog.New(bufferLogs()).With().Timestamp().Caller().Logger()
	zerolog.DefaultContextLogger = &log.Logger
}

// ParseLogMode returns the LogMode matching the given string, or an error
// when the string names no known mode.
func ParseLogMode(s string) (LogMode, error) {
	modes := []LogMode{LogModeDefault, LogModeJSON, LogModeCombined}
	for _, mode := range modes {
		if strings.ToLower(s) == string(mode) {
			return mode, nil
		}
	}
	return LogModeDefault, fmt.Errorf("%q is not a valid log mode (valid modes: %q)", s, modes)
}

// ConfigureLogging sets up the global logger for the given mode, with the
// level taken from the LOG_LEVEL environment variable. Any lines logged
// before configuration are flushed to the new writer.
func ConfigureLogging(mode LogMode) {
	configureLogging(mode)
}

type tTesting interface {
	Log(args ...interface{})
	Logf(format string, args ...interface{})
	Helper()
	Cleanup(f func())
}

// ConfigureTestLogging allows logs to be associated with individual tests
func ConfigureTestLogging(t tTesting) {
	oldLogger := log.Logger
	oldContextLogger := zerolog.DefaultContextLogger
	configureLogging(LogModeDefault, zerolog.ConsoleTestWriter(t))
	t.Cleanup(func() {
		log.Logger = oldLogger
		zerolog.DefaultContextLogger = oldContextLogger
	})
}

func configureLogging(mode LogMode, loggingOptions ...func(w *zerolog.ConsoleWriter)) {
	zerolog.SetGlobalLevel(levelFromEnv())

	loggingOptions = append([]func(w *zerolog.ConsoleWriter){defaultLogging}, loggingOptions...)
	textWriter := zerolog.NewConsoleWriter(loggingOptions...)

	var useLogWriter io.Writer = textWriter
	switch mode {
	case LogModeJSON:
		useLogWriter = os.Stdout
	case LogModeCombined:
		useLogWriter = zerolog.MultiLevelWriter(textWriter, os.Stdout)
	case LogModeDefault:
	}

	log.Logger = zerolog.New(useLogWriter).With().Timestamp().Caller().Logger()
	zerolog.DefaultContextLogger = &log.Logger

	LogBufferedLogs(useLogWriter)
}

func defaultLogging(w *zerolog.ConsoleWriter) {
	w.Out = stderr
	w.NoColor = !isatty.IsTerminal(os.Stdout.Fd())
	w.TimeFormat = "15:04:05.999 |"
	w.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.LevelFieldName,
		zerolog.CallerFieldName,
		zerolog.MessageFieldName,
	}

	w.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("[%s:", i)
	}

	w.FormatFieldValue = func(i interface{}) string {
		// don't print nil in case the field value wasn't present
		if i == nil {
			i = ""
		}
		return fmt.Sprintf("%s]", i)
	}
}

func levelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// marshalCaller shortens the caller path to its last two components.
func marshalCaller(_ uintptr, file string, line int) string {
	short := file

	separatorCount := 2
	countedSeparators := 0

	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			countedSeparators += 1
			if countedSeparators >= separatorCount {
				short = file[i+1:]
				break
			}
		}
	}
	return short + ":" + strconv.Itoa(line)
}
