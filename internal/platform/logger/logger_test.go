package logger_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"ancare/internal/platform/logger"
)

func TestNewParsesLevel(t *testing.T) {
	t.Parallel()
	log, err := logger.New("DEBUG")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug level should be enabled")
	}
}

func TestNewFallsBackToWarn(t *testing.T) {
	t.Parallel()
	for _, level := range []string{"", "chatty"} {
		log, err := logger.New(level)
		if err != nil {
			t.Fatalf("new logger: %v", err)
		}
		if log.Core().Enabled(zapcore.InfoLevel) || !log.Core().Enabled(zapcore.WarnLevel) {
			t.Fatalf("level %q should fall back to warn", level)
		}
	}
}
