// Package logx provides a leveled, channel-based logger with colored
// console output, rotating file output and per-level callbacks.
package logx

import (
	"fmt"
	"strings"
)

// Level is the severity of a log line. Success ranks between Info and
// Warning so success lines survive an Info-suppressing threshold.
type Level int8

const (
	LevelVerbose Level = iota
	LevelDebug
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
	LevelCritical
)

var levelNames = map[Level]string{
	LevelVerbose:  "VERBOSE",
	LevelDebug:    "DEBUG",
	LevelInfo:     "INFO",
	LevelSuccess:  "SUCCESS",
	LevelWarning:  "WARNING",
	LevelError:    "ERROR",
	LevelCritical: "CRITICAL",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level %d", int(l))
}

// ParseLevel resolves a level name. Short aliases SUC, WARN and ERR are
// accepted.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VERBOSE":
		return LevelVerbose, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "SUC", "SUCCESS":
		return LevelSuccess, nil
	case "WARN", "WARNING":
		return LevelWarning, nil
	case "ERR", "ERROR":
		return LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	}
	return 0, fmt.Errorf("logx: unknown level %q", s)
}

const colorReset = "\x1b[0m"

var levelColors = map[Level]string{
	LevelVerbose:  "\x1b[0;36m",
	LevelDebug:    "\x1b[0;35m",
	LevelInfo:     "\x1b[1;34m",
	LevelSuccess:  "\x1b[1;32m",
	LevelWarning:  "\x1b[1;33m",
	LevelError:    "\x1b[1;31m",
	LevelCritical: "\x1b[0;37;41m",
}

func colorize(level Level, line string) string {
	c, ok := levelColors[level]
	if !ok {
		return line
	}
	return c + line + colorReset
}
