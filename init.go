package coinstats

import (
	"os"
	"strconv"

	"github.com/raykavin/coinstats/pkg/logger/zerolog"
)

const (
	defaultLogLevel      = "info"
	defaultLogTimeFormat = "2006-01-02 15:04:05"
	defaultLogColored    = "true"
	defaultLogJSON       = "false"
)

// Environment variables read when the package is initialized
const (
	envLogLevel      = "COINSTATS_LOG_LEVEL"
	envLogTimeFormat = "COINSTATS_LOG_TIME_FORMAT"
	envLogColor      = "COINSTATS_LOG_COLOR"
	envLogJSON       = "COINSTATS_LOG_JSON"
)

func init() {
	cfg, err := loggerConfig()
	if err != nil {
		panic(err)
	}

	log, err := zerolog.New(cfg)
	if err != nil {
		panic(err)
	}

	DefaultLog = zerolog.NewAdapter(log)
}

// loggerConfig reads the logger settings from the environment
func loggerConfig() (zerolog.Config, error) {
	colored, err := parseBoolEnv(envLogColor, defaultLogColored)
	if err != nil {
		return zerolog.Config{}, err
	}

	jsonFormat, err := parseBoolEnv(envLogJSON, defaultLogJSON)
	if err != nil {
		return zerolog.Config{}, err
	}

	return zerolog.Config{
		Level:          getEnvWithDefault(envLogLevel, defaultLogLevel),
		DateTimeLayout: getEnvWithDefault(envLogTimeFormat, defaultLogTimeFormat),
		Colored:        colored,
		JSON:           jsonFormat,
	}, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key, defaultValue string) (bool, error) {
	return strconv.ParseBool(getEnvWithDefault(key, defaultValue))
}
