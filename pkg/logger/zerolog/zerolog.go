package zerolog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Config holds the console logger settings
type Config struct {
	Level          string
	DateTimeLayout string
	Colored        bool
	JSON           bool
	Output         io.Writer
}

// New creates a zerolog logger. JSON output skips the console writer.
func New(cfg Config) (*zerolog.Logger, error) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	if !cfg.JSON {
		console := zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    !cfg.Colored,
			TimeFormat: cfg.DateTimeLayout,
		}
		if cfg.Colored {
			console.FormatLevel = formatLevel
			console.FormatCaller = formatCaller
			console.FormatTimestamp = func(i any) string {
				return formatTimestamp(i, cfg.DateTimeLayout)
			}
		}
		out = console
	}

	log := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		CallerWithSkipFrameCount(3).
		Logger()

	return &log, nil
}

func formatLevel(i any) string {
	switch fmt.Sprint(i) {
	case zerolog.LevelDebugValue:
		return term.Cyanf("[DBG]")
	case zerolog.LevelInfoValue:
		return term.Greenf("[INF]")
	case zerolog.LevelWarnValue:
		return term.Yellowf("[WRN]")
	case zerolog.LevelErrorValue:
		return term.Redf("[ERR]")
	case zerolog.LevelFatalValue:
		return term.Redf("[FTL]")
	default:
		return term.Whitef("[???]")
	}
}

func formatCaller(i any) string {
	const width = 20

	caller, ok := i.(string)
	if !ok || caller == "" {
		return ""
	}

	caller = filepath.Base(caller)
	if len(caller) > width {
		caller = caller[len(caller)-width:]
	}

	return term.Yellowf("[%s]", caller+strings.Repeat(" ", width-len(caller)))
}

func formatTimestamp(i any, layout string) string {
	value, ok := i.(string)
	if !ok {
		return term.Cyanf("[%v]", i)
	}

	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		value = ts.Local().Format(layout)
	}

	return term.Cyanf("[%s]", value)
}
