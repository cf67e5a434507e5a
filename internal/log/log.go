package log

import (
	"io"
	"os"
	"strings"
	"sync"

	cblog "github.com/charmbracelet/log"
)

var (
	logger     *cblog.Logger
	loggerOnce sync.Once
)

func GetLogger() *cblog.Logger {
	loggerOnce.Do(func() {
		logger = cblog.NewWithOptions(os.Stderr, cblog.Options{
			ReportTimestamp: false,
			Prefix:          "viiv",
			Level:           cblog.InfoLevel,
		})
	})
	return logger
}

// SetLevel accepts debug, info, warn, error or fatal. Unknown names fall back to info.
func SetLevel(level string) {
	parsed, err := cblog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		GetLogger().Warnf("Unknown log level %q, using info", level)
		parsed = cblog.InfoLevel
	}
	GetLogger().SetLevel(parsed)
}

func SetOutput(w io.Writer) {
	GetLogger().SetOutput(w)
}

func Debug(msg interface{}, keyvals ...interface{}) {
	GetLogger().Debug(msg, keyvals...)
}

func Debugf(format string, args ...interface{}) {
	GetLogger().Debugf(format, args...)
}

func Info(msg interface{}, keyvals ...interface{}) {
	GetLogger().Info(msg, keyvals...)
}

func Infof(format string, args ...interface{}) {
	GetLogger().Infof(format, args...)
}

func Warn(msg interface{}, keyvals ...interface{}) {
	GetLogger().Warn(msg, keyvals...)
}

func Warnf(format string, args ...interface{}) {
	GetLogger().Warnf(format, args...)
}

func Error(msg interface{}, keyvals ...interface{}) {
	GetLogger().Error(msg, keyvals...)
}

func Errorf(format string, args ...interface{}) {
	GetLogger().Errorf(format, args...)
}

func Fatal(msg interface{}, keyvals ...interface{}) {
	GetLogger().Fatal(msg, keyvals...)
}

func Fatalf(format string, args ...interface{}) {
	GetLogger().Fatalf(format, args...)
}
