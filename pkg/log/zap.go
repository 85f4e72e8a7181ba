package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var encCfg zapcore.EncoderConfig
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		if cfg.ColorEnabled {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(level))

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestIDFromContext(ctx); id != "" {
		return l.sugar.With("request_id", id)
	}
	return l.sugar
}

func (l *zapLogger) Debug(ctx context.Context, args ...any) { l.with(ctx).Debug(args...) }
func (l *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Debugf(format, args...)
}
func (l *zapLogger) Info(ctx context.Context, args ...any) { l.with(ctx).Info(args...) }
func (l *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	l.with(ctx).Infof(format, args...)
}
func (l *zapLogger) Warn(ctx context.Context, args ...any) { l.with(ctx).Warn(args...) }
func (l *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Warnf(format, args...)
}
func (l *zapLogger) Error(ctx context.Context, args ...any) { l.with(ctx).Error(args...) }
func (l *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Errorf(format, args...)
}
func (l *zapLogger) DPanic(ctx context.Context, args ...any) { l.with(ctx).DPanic(args...) }
func (l *zapLogger) DPanicf(ctx context.Context, format string, args ...any) {
	l.with(ctx).DPanicf(format, args...)
}
func (l *zapLogger) Panic(ctx context.Context, args ...any) { l.with(ctx).Panic(args...) }
func (l *zapLogger) Panicf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Panicf(format, args...)
}
func (l *zapLogger) Fatal(ctx context.Context, args ...any) { l.with(ctx).Fatal(args...) }
func (l *zapLogger) Fatalf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Fatalf(format, args...)
}
