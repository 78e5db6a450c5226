package logger

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance. The core pipeline never logs;
// only the driver reports stage progress through it.
var Logger *zap.SugaredLogger

func init() {
	// Safe no-op logger at package load time, so nothing panics if the
	// logger is used before Initialize is called
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. With debug disabled the logger
// stays a no-op and generation runs silently except for its output.
func Initialize(debug bool) error {
	if !debug {
		Logger = zap.NewNop().Sugar()
		return nil
	}

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	Logger = zapLogger.Sugar()
	return nil
}
