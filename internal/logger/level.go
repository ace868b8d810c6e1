package logger

import (
	"log"
	"strings"
)

const (
	levelDebug = iota
	levelInfo
	levelWarning
	levelError
)

var currentLevel = levelInfo

func setLevel(name string) {
	switch strings.ToUpper(name) {
	case "DEBUG":
		currentLevel = levelDebug
	case "INFO":
		currentLevel = levelInfo
	case "WARNING":
		currentLevel = levelWarning
	case "ERROR":
		currentLevel = levelError
	default:
		currentLevel = levelInfo
	}
}

// Debugf logs a debug level message
func Debugf(format string, args ...interface{}) {
	if currentLevel <= levelDebug {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// Infof logs an info level message
func Infof(format string, args ...interface{}) {
	if currentLevel <= levelInfo {
		log.Printf("[INFO] "+format, args...)
	}
}

// Warningf logs a warning level message
func Warningf(format string, args ...interface{}) {
	if currentLevel <= levelWarning {
		log.Printf("[WARNING] "+format, args...)
	}
}

// Errorf logs an error level message
func Errorf(format string, args ...interface{}) {
	if currentLevel <= levelError {
		log.Printf("[ERROR] "+format, args...)
	}
}
