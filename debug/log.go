package debug

import (
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.SugaredLogger]

func newStderrLogger() *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		zap.DebugLevel,
	)
	return zap.New(core).Sugar().Named("derive")
}

func setLogger(l *zap.SugaredLogger) {
	logger.Store(l)
}

// SetLogger replaces the destination of debug output. Passing nil
// discards it.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	setLogger(l)
}

// Logf logs a debug message. Callers guard it with one of the toggles.
func Logf(msg string, args ...any) {
	l := logger.Load()
	if l == nil {
		return
	}
	l.Debugf(strings.TrimSuffix(msg, "\n"), args...)
}
