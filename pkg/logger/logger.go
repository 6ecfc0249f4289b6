package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	TargetConsole = "console"
	TargetFile    = "file"
)

var global = zap.NewNop().Sugar()

// InitGlobalLogger replaces the package logger. Until it is called every log call is a no-op.
func InitGlobalLogger(cfg *Config) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := make([]zapcore.Core, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		switch target {
		case TargetConsole:
			cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg),
				zapcore.Lock(os.Stdout), level))

		case TargetFile:
			if cfg.Filename == "" {
				continue
			}

			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg),
				zapcore.AddSync(&lumberjack.Logger{
					Filename:   cfg.Filename,
					MaxSize:    cfg.MaxSize,
					MaxBackups: cfg.MaxBackups,
					MaxAge:     cfg.MaxAge,
					Compress:   cfg.Compress,
				}), level))
		}
	}

	if len(cores) == 0 {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.Lock(os.Stdout), level))
	}

	global = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

func Debug(msg string, keysAndValues ...any) {
	global.Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	global.Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	global.Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	global.Errorw(msg, keysAndValues...)
}

// Sync flushes buffered entries. Call it before the process exits.
func Sync() {
	_ = global.Sync()
}
