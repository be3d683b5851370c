package log

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/neuronlabs/uni-logger"

	"github.com/neuronlabs/sideload/errors"
)

// Logger error classifications.
var (
	// ErrLogger is the major logger error classification.
	ErrLogger = errors.New("logger")
	// ErrUnknownLevel is the classification for unknown logger level.
	ErrUnknownLevel = errors.Wrap(ErrLogger, "unknown level")
	// ErrNotImplements is the classification for loggers that don't implement some interface.
	ErrNotImplements = errors.Wrap(ErrLogger, "not implements")
)

const (
	// LevelDebug3 is the logger DEBUG3 level.
	LevelDebug3 = unilogger.DEBUG3
	// LevelDebug2 is the logger DEBUG2 level.
	LevelDebug2 = unilogger.DEBUG2
	// LevelDebug is the logger DEBUG level.
	LevelDebug = unilogger.DEBUG
	// LevelInfo is the logger INFO level.
	LevelInfo = unilogger.INFO
	// LevelWarning is the logger WARNING level.
	LevelWarning = unilogger.WARNING
	// LevelError is the logger ERROR level.
	LevelError = unilogger.ERROR
	// LevelCritical is the logger CRITICAL level.
	LevelCritical = unilogger.CRITICAL
	// LevelUnknown is the unspecified logger level.
	LevelUnknown = unilogger.UNKNOWN
)

var (
	logger         unilogger.LeveledLogger
	currentLevel   = LevelInfo
	debugLeveled   unilogger.DebugLeveledLogger
	isDebugLeveled bool
)

// Default creates and sets new unilogger.BasicLogger with writer to 'os.Stderr'.
func Default() {
	basic := unilogger.NewBasicLogger(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
	basic.SetOutputDepth(4)
	SetLogger(basic)
}

// New creates new unilogger.BasicLogger that writes to provided 'out' io.Writer
// with specific 'prefix' and provided 'flags'.
func New(out io.Writer, prefix string, flags int) {
	basic := unilogger.NewBasicLogger(out, prefix, flags)
	basic.SetOutputDepth(4)
	SetLogger(basic)
}

// IsAllowed checks if the provided 'level' is allowed under the current
// logger level.
func IsAllowed(level unilogger.Level) bool {
	return level >= currentLevel
}

// Level returns current logger Level.
func Level() unilogger.Level {
	return currentLevel
}

// Logger returns current logger instance.
func Logger() unilogger.LeveledLogger {
	return logger
}

// ParseLevel parses the level name into the unilogger.Level.
func ParseLevel(level string) unilogger.Level {
	return unilogger.ParseLevel(level)
}

// SetLevel sets the 'level' for the current logger.
func SetLevel(level unilogger.Level) error {
	if level == LevelUnknown {
		return errors.WrapDet(ErrUnknownLevel, "can't set unknown logger level")
	}
	if level == currentLevel {
		return nil
	}

	currentLevel = level
	if logger == nil {
		return nil
	}

	lvl, ok := logger.(unilogger.LevelSetter)
	if !ok {
		return errors.WrapDet(ErrNotImplements, "logger doesn't implement LevelSetter interface")
	}
	lvl.SetLevel(currentLevel)
	return nil
}

// SetLogger sets the 'log' as the current logger.
func SetLogger(log unilogger.LeveledLogger) {
	logger = log

	depth, ok := log.(unilogger.OutputDepthGetter)
	if ok {
		if setter, ok := log.(unilogger.OutputDepthSetter); ok {
			setter.SetOutputDepth(depth.GetOutputDepth() + 1)
		}
	}
	if lvlSetter, ok := log.(unilogger.LevelSetter); ok {
		lvlSetter.SetLevel(currentLevel)
	}
	debugLeveled, isDebugLeveled = log.(unilogger.DebugLeveledLogger)

	Debugf("New logger set with level: %s", currentLevel.String())
}

// Debug writes the LevelDebug level log.
func Debug(args ...interface{}) {
	if logger != nil {
		logger.Debug(args...)
	}
}

// Debugf writes the formatted LevelDebug level log.
func Debugf(format string, args ...interface{}) {
	if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Debug2 writes the LevelDebug2 level logs.
func Debug2(args ...interface{}) {
	if !isDebugLeveled {
		if logger != nil {
			logger.Debug(args...)
		}
	} else if debugLeveled != nil {
		debugLeveled.Debug2(args...)
	}
}

// Debug2f writes the formatted LevelDebug2 level log.
func Debug2f(format string, args ...interface{}) {
	if !isDebugLeveled {
		if logger != nil {
			logger.Debugf(format, args...)
		}
	} else if debugLeveled != nil {
		debugLeveled.Debug2f(format, args...)
	}
}

// Debug3 writes the LevelDebug3 level logs.
func Debug3(args ...interface{}) {
	if !isDebugLeveled {
		if logger != nil {
			logger.Debug(args...)
		}
	} else if debugLeveled != nil {
		debugLeveled.Debug3(args...)
	}
}

// Debug3f writes the formatted LevelDebug3 level log.
func Debug3f(format string, args ...interface{}) {
	if !isDebugLeveled {
		if logger != nil {
			logger.Debugf(format, args...)
		}
	} else if debugLeveled != nil {
		debugLeveled.Debug3f(format, args...)
	}
}

// Info writes the LevelInfo level log.
func Info(args ...interface{}) {
	if logger != nil {
		logger.Info(args...)
	}
}

// Infof writes the formatted LevelInfo level log.
func Infof(format string, args ...interface{}) {
	if logger != nil {
		logger.Infof(format, args...)
	}
}

// Warning writes the LevelWarning level log.
func Warning(args ...interface{}) {
	if logger != nil {
		logger.Warning(args...)
	}
}

// Warningf writes the formatted LevelWarning level log.
func Warningf(format string, args ...interface{}) {
	if logger != nil {
		logger.Warningf(format, args...)
	}
}

// Error writes the LevelError level log.
func Error(args ...interface{}) {
	if logger != nil {
		logger.Error(args...)
	}
}

// Errorf writes the formatted LevelError level log.
func Errorf(format string, args ...interface{}) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}

// Fatal writes the fatal - LevelCritical level log.
func Fatal(args ...interface{}) {
	if logger != nil {
		logger.Fatal(args...)
	} else {
		fmt.Println(args...)
		os.Exit(1)
	}
}

// Fatalf writes the formatted fatal - LevelCritical level log.
func Fatalf(format string, args ...interface{}) {
	if logger != nil {
		logger.Fatalf(format, args...)
	} else {
		fmt.Printf(format, args...)
		os.Exit(1)
	}
}

// Panic writes and panics the log.
func Panic(args ...interface{}) {
	if logger != nil {
		logger.Panic(args...)
	} else {
		panic(fmt.Sprint(args...))
	}
}

// Panicf writes and panics formatted log.
func Panicf(format string, args ...interface{}) {
	if logger != nil {
		logger.Panicf(format, args...)
	} else {
		panic(fmt.Sprintf(format, args...))
	}
}
