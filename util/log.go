package util

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger   = newLogger(os.Stderr)
)

// newLogger builds a logger for humans reading a terminal: no timestamps,
// no caller, just the level and the message.
func newLogger(w io.Writer) *zap.SugaredLogger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.NameKey = ""
	enc.StacktraceKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(zapcore.AddSync(w)),
		logLevel,
	)
	return zap.New(core).Sugar()
}

// SetLogOutput redirects all diagnostics. Mostly useful in tests.
func SetLogOutput(w io.Writer) {
	logger = newLogger(w)
}

func setLogLevel(quiet, verbose bool) {
	switch {
	case verbose:
		logLevel.SetLevel(zapcore.DebugLevel)
	case quiet:
		logLevel.SetLevel(zapcore.ErrorLevel)
	default:
		logLevel.SetLevel(zapcore.InfoLevel)
	}
}

// Verbosef is only shown when -verbose is set.
func Verbosef(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}

// Warnf is suppressed by -quiet.
func Warnf(format string, v ...interface{}) {
	logger.Warnf(format, v...)
}

// Fatalf logs the message and exits with status 1.
func Fatalf(format string, v ...interface{}) {
	logger.Errorf(format, v...)
	logger.Sync()
	os.Exit(1)
}

// Assert quits via Fatalf if err is not nil. An optional format string and
// arguments are prepended to the error message.
func Assert(err error, format ...interface{}) {
	if err == nil {
		return
	}
	if len(format) > 0 {
		msg := fmt.Sprintf(format[0].(string), format[1:]...)
		Fatalf("%s: %s", msg, err)
	}
	Fatalf("%s", err)
}
