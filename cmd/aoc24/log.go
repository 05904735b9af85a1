package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevels = map[string]zerolog.Level{
	"off":   zerolog.Disabled,
	"error": zerolog.ErrorLevel,
	"warn":  zerolog.WarnLevel,
	"info":  zerolog.InfoLevel,
	"debug": zerolog.DebugLevel,
	"trace": zerolog.TraceLevel,
}

func parseLogLevel(s string) (zerolog.Level, error) {
	l, ok := logLevels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q (want off, error, warn, info, debug or trace)", s)
	}
	return l, nil
}

// setupLogger points the global logger at a console writer on w.
func setupLogger(w io.Writer, level zerolog.Level) {
	noColor := os.Getenv("NO_COLOR") != ""
	if f, ok := w.(*os.File); !ok {
		noColor = true
	} else if fi, err := f.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		noColor = true
	}

	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      noColor,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(out).Level(level)
}
