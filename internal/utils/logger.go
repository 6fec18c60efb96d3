package utils

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	instance *Logger
	once     sync.Once
	settings loggerSettings
)

type loggerSettings struct {
	logFilePath string
	debugMode   bool
}

// Logger struct
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

// NewLogger creates the shared logger instance (singleton). Output goes to
// stderr and, when logFilePath is set, to that file as well. Once the
// singleton exists, asking for different settings returns it together with
// an error, since the original settings stay in effect.
func NewLogger(logFilePath string, debugMode bool) (*Logger, error) {
	var err error
	requested := loggerSettings{logFilePath: logFilePath, debugMode: debugMode}
	created := false
	once.Do(func() {
		created = true
		var file *os.File
		var out io.Writer = os.Stderr
		if logFilePath != "" {
			file, err = os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				return
			}
			out = io.MultiWriter(file, os.Stderr)
		}
		instance = NewLoggerWithOutput(out, debugMode)
		instance.file = file
		settings = requested
	})
	if err != nil {
		once = sync.Once{}
		return nil, err
	}
	if !created && settings != requested {
		return instance, fmt.Errorf("logger already initialised with log file %q and debug %t",
			settings.logFilePath, settings.debugMode)
	}
	return instance, nil
}

// NewLoggerWithOutput builds a standalone logger writing to out.
func NewLoggerWithOutput(out io.Writer, debugMode bool) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debugMode {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return &Logger{entry: logrus.NewEntry(l)}
}

// GetLogger retrieves the singleton logger instance, falling back to an
// info-level stderr logger if NewLogger was never called.
func GetLogger() *Logger {
	once.Do(func() {
		instance = NewLoggerWithOutput(os.Stderr, false)
		settings = loggerSettings{}
	})
	return instance
}

// With returns a logger that tags every line with key=value.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Logging methods
func (l *Logger) Info(message string) {
	l.entry.Info(message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
}
