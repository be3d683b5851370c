// Package log contains the default logger interface used by all packages to
// log their messages.
//
// In order not to extort any specific logging package, the package wraps
// around third-party loggers that implement one of the uni-logger interfaces:
//	# LeveledLogger - basic leveled logger interface
//	# DebugLeveledLogger - leveled logger with the debug2 and debug3 levels
//
// By default no logger is set and all messages are being thrown away. Set the
// default logger with the Default function or provide a custom one with
// SetLogger.
package log
