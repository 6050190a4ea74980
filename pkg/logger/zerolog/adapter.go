package zerolog

import (
	"fmt"

	"github.com/raykavin/coinstats/pkg/logger"
	"github.com/rs/zerolog"
)

// Adapter implements logger.Logger on top of a zerolog logger
type Adapter struct {
	*zerolog.Logger
}

var _ logger.Logger = (*Adapter)(nil)

// NewAdapter wraps a zerolog logger
func NewAdapter(log *zerolog.Logger) *Adapter {
	return &Adapter{log}
}

// Nop returns an adapter that discards everything, used by tests
func Nop() *Adapter {
	log := zerolog.Nop()
	return &Adapter{&log}
}

func (z *Adapter) WithField(key string, value any) logger.Logger {
	log := z.With().Interface(key, value).Logger()
	return &Adapter{&log}
}

func (z *Adapter) WithFields(fields map[string]any) logger.Logger {
	log := z.With().Fields(fields).Logger()
	return &Adapter{&log}
}

func (z *Adapter) WithError(err error) logger.Logger {
	log := z.With().Err(err).Logger()
	return &Adapter{&log}
}

func (z *Adapter) Debug(args ...any) { z.Logger.Debug().Msg(fmt.Sprint(args...)) }
func (z *Adapter) Info(args ...any)  { z.Logger.Info().Msg(fmt.Sprint(args...)) }
func (z *Adapter) Warn(args ...any)  { z.Logger.Warn().Msg(fmt.Sprint(args...)) }
func (z *Adapter) Error(args ...any) { z.Logger.Error().Msg(fmt.Sprint(args...)) }
func (z *Adapter) Fatal(args ...any) { z.Logger.Fatal().Msg(fmt.Sprint(args...)) }

func (z *Adapter) Debugf(format string, args ...any) { z.Logger.Debug().Msgf(format, args...) }
func (z *Adapter) Infof(format string, args ...any)  { z.Logger.Info().Msgf(format, args...) }
func (z *Adapter) Warnf(format string, args ...any)  { z.Logger.Warn().Msgf(format, args...) }
func (z *Adapter) Errorf(format string, args ...any) { z.Logger.Error().Msgf(format, args...) }
func (z *Adapter) Fatalf(format string, args ...any) { z.Logger.Fatal().Msgf(format, args...) }

// SetLevel changes the minimum level of this adapter only
func (z *Adapter) SetLevel(level logger.Level) {
	log := z.Logger.Level(toZerologLevel(level))
	z.Logger = &log
}

func (z *Adapter) GetLevel() logger.Level {
	return toLevel(z.Logger.GetLevel())
}

var levels = map[logger.Level]zerolog.Level{
	logger.Disabled:   zerolog.Disabled,
	logger.DebugLevel: zerolog.DebugLevel,
	logger.InfoLevel:  zerolog.InfoLevel,
	logger.WarnLevel:  zerolog.WarnLevel,
	logger.ErrorLevel: zerolog.ErrorLevel,
	logger.FatalLevel: zerolog.FatalLevel,
}

func toZerologLevel(level logger.Level) zerolog.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return zerolog.InfoLevel
}

func toLevel(level zerolog.Level) logger.Level {
	for l, zl := range levels {
		if zl == level {
			return l
		}
	}

	// trace and below are reported as debug
	if level < zerolog.DebugLevel {
		return logger.DebugLevel
	}
	return logger.InfoLevel
}
