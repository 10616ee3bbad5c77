package logging

import (
	"github.com/frenzeldk/shopify-tools/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerService is the logging surface every adapter and usecase receives.
// Success/error lines are additionally mirrored to Telegram when a bot is
// configured, so operators see sync outcomes without tailing logs.
type LoggerService interface {
	Log(value string)
	LogError(value string, err error)
	LogWarning(value string)
	LogSuccess(value string)
}

type zapLogger struct {
	sugar    *zap.SugaredLogger
	notifier *telegramNotifier
}

// NewLogger builds a zap-backed logger. levelStr falls back to info when
// it does not parse. telegram may be zero-valued; the mirror is then off.
func NewLogger(levelStr string, telegram config.TelegramBotConfig) LoggerService {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{
		sugar:    logger.Sugar(),
		notifier: newTelegramNotifier(telegram),
	}
}

func (l *zapLogger) Log(value string) {
	l.sugar.Info(value)
}

func (l *zapLogger) LogError(value string, err error) {
	l.sugar.Errorw(value, "error", err)
	l.notifier.send(iconError, "ERROR", value+": "+errString(err))
}

func (l *zapLogger) LogWarning(value string) {
	l.sugar.Warn(value)
}

func (l *zapLogger) LogSuccess(value string) {
	l.sugar.Info(value)
	l.notifier.send(iconSuccess, "SUCCESS", value)
}

func errString(err error) string {
	if err == nil {
		return "-"
	}
	return err.Error()
}
