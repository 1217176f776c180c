package config

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

var log = NamedLogger("config")

// NamedLogger creates named package logger.
func NamedLogger(name string) logrus.Logger {
	return logrus.Logger{
		Out: os.Stderr,
		Formatter: &CustomTextFormatter{
			name: name,
			TextFormatter: logrus.TextFormatter{
				ForceColors: true,
			},
		},
		Hooks: make(logrus.LevelHooks),
		Level: logrus.InfoLevel,
	}
}

// LoggerLevel returns the configured logging level as a logrus level.
func (c *Config) LoggerLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LoggingLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// CustomTextFormatter prefixes every entry with the caller location and the
// logger name.
type CustomTextFormatter struct {
	logrus.TextFormatter
	name string
}

// Format renders a single log entry.
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	_, file, no, _ := runtime.Caller(5)
	entry.Message = fmt.Sprintf("[%s][%-15s:%03d] %s", f.name, path.Base(file), no, entry.Message)
	return f.TextFormatter.Format(entry)
}
