// Package logger wraps op/go-logging with a console backend and an optional
// file backend. Call InitLogger once from main; until then messages go to
// stderr at INFO.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/op/go-logging"
)

const (
	moduleName = "bookingdesk"
	timeFormat = "2006/01/02 15:04:05"
)

var (
	mu      sync.Mutex
	logger  *logging.Logger
	logFile *os.File
)

func init() {
	InitLogger(logging.INFO, "")
}

// InitLogger installs a stderr backend at the given level and, when filePath
// is set, a DEBUG-level file backend next to it.
func InitLogger(level logging.Level, filePath string) {
	mu.Lock()
	defer mu.Unlock()

	newLogger := logging.MustGetLogger(moduleName)
	backends := make([]logging.Backend, 0, 2)

	console := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), newFormatter())
	leveledConsole := logging.AddModuleLevel(console)
	leveledConsole.SetLevel(level, moduleName)
	backends = append(backends, leveledConsole)

	if fileBackend := initFileBackend(filePath); fileBackend != nil {
		leveledFile := logging.AddModuleLevel(fileBackend)
		leveledFile.SetLevel(logging.DEBUG, moduleName)
		backends = append(backends, leveledFile)
	}

	newLogger.SetBackend(logging.MultiLogger(backends...))
	logger = newLogger
}

// ParseLevel maps "debug", "info", "warning", "error" to a go-logging level.
func ParseLevel(name string) (logging.Level, error) {
	return logging.LogLevel(name)
}

func initFileBackend(filePath string) logging.Backend {
	if filePath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log folder for %s: %v\n", filePath, err)
		return nil
	}
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o660)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", filePath, err)
		return nil
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file

	return logging.NewBackendFormatter(logging.NewLogBackend(file, "", 0), newFormatter())
}

func newFormatter() logging.Formatter {
	return logging.MustStringFormatter(`%{time:` + timeFormat + `} %{level:.4s} - %{message}`)
}

// CloseLogger closes the log file, if any.
func CloseLogger() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
