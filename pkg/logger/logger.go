package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config defines logger configuration.
type Config struct {
	Environment string // "development" or "production"
	Level       string // "debug", "info", "warn", "error"
	Filename    string // log file path, production only
	MaxSize     int    // megabytes before rotation
	MaxBackups  int    // rotated files to retain
	MaxAge      int    // days to retain rotated files
	Compress    bool
}

// ConfigFromEnv builds a Config from APP_ENV / LOG_LEVEL / LOG_FILE.
func ConfigFromEnv() Config {
	cfg := Config{
		Environment: envOr("APP_ENV", "development"),
		Level:       envOr("LOG_LEVEL", ""),
		Filename:    envOr("LOG_FILE", "logs/app.log"),
		MaxSize:     100,
		MaxBackups:  10,
		MaxAge:      30,
		Compress:    true,
	}
	if cfg.Level == "" {
		if cfg.Environment == "production" {
			cfg.Level = "info"
		} else {
			cfg.Level = "debug"
		}
	}
	return cfg
}

// New builds the zap logger: JSON to a rotated file plus stderr in
// production, human-readable console otherwise.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	if cfg.Environment != "production" {
		encoderCfg := zap.NewDevelopmentEncoderConfig()
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			level,
		)
		return zap.New(core, zap.Development()), nil
	}

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	})
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.NewMultiWriteSyncer(fileWriter, zapcore.Lock(os.Stderr)),
		level,
	)
	return zap.New(core), nil
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
