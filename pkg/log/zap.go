package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // development | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the service logger from config. Invalid values fall back
// to a development console logger rather than failing startup.
func Init(cfg ZapConfig) Logger {
	level := zapcore.DebugLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.DebugLevel
	}

	var encCfg zapcore.EncoderConfig
	if cfg.Mode == "production" {
		encCfg = zap.NewProductionEncoderConfig()
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != "json" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      cfg.Mode != "production",
		Encoding:         cfg.Encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if zapCfg.Encoding == "" {
		zapCfg.Encoding = "console"
	}

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.Must(zap.NewDevelopment(zap.AddCallerSkip(1)))
	}

	return &zapLogger{sugar: l.Sugar()}
}

// with enriches the sugared logger with request-scoped fields from ctx.
func (z *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestIDFromContext(ctx); id != "" {
		return z.sugar.With("request_id", id)
	}
	return z.sugar
}

func (z *zapLogger) Debug(ctx context.Context, args ...any) { z.with(ctx).Debug(args...) }
func (z *zapLogger) Debugf(ctx context.Context, template string, args ...any) {
	z.with(ctx).Debugf(template, args...)
}

func (z *zapLogger) Info(ctx context.Context, args ...any) { z.with(ctx).Info(args...) }
func (z *zapLogger) Infof(ctx context.Context, template string, args ...any) {
	z.with(ctx).Infof(template, args...)
}

func (z *zapLogger) Warn(ctx context.Context, args ...any) { z.with(ctx).Warn(args...) }
func (z *zapLogger) Warnf(ctx context.Context, template string, args ...any) {
	z.with(ctx).Warnf(template, args...)
}

func (z *zapLogger) Error(ctx context.Context, args ...any) { z.with(ctx).Error(args...) }
func (z *zapLogger) Errorf(ctx context.Context, template string, args ...any) {
	z.with(ctx).Errorf(template, args...)
}

func (z *zapLogger) DPanic(ctx context.Context, args ...any) { z.with(ctx).DPanic(args...) }
func (z *zapLogger) DPanicf(ctx context.Context, template string, args ...any) {
	z.with(ctx).DPanicf(template, args...)
}

func (z *zapLogger) Panic(ctx context.Context, args ...any) { z.with(ctx).Panic(args...) }
func (z *zapLogger) Panicf(ctx context.Context, template string, args ...any) {
	z.with(ctx).Panicf(template, args...)
}

func (z *zapLogger) Fatal(ctx context.Context, args ...any) { z.with(ctx).Fatal(args...) }
func (z *zapLogger) Fatalf(ctx context.Context, template string, args ...any) {
	z.with(ctx).Fatalf(template, args...)
}
