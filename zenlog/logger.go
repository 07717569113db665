/*
 * Zen
 *
 * Copyright 2026 The Zen Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package zenlog provides the small level-filtered logging facility the
// parser uses to trace its own resynchronization decisions. It is entirely
// optional: a parser with no logger attached emits nothing through this
// package.
package zenlog

import (
	"fmt"
	"log"
	"strings"
)

// Level is a logging verbosity level.
type Level string

// Supported levels, from least to most verbose.
const (
	LevelError Level = "error"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

/*
Logger is implemented by any logging backend this package can wrap.
*/
type Logger interface {
	LogError(m ...interface{})
	LogInfo(m ...interface{})
	LogDebug(m ...interface{})
}

/*
LevelLogger wraps a Logger and filters messages below a configured Level.
*/
type LevelLogger struct {
	logger Logger
	level  Level
}

/*
NewLevelLogger wraps logger with level-based filtering. An invalid level
string is an error, not a panic, since it is typically derived from
user-supplied configuration.
*/
func NewLevelLogger(logger Logger, level string) (*LevelLogger, error) {
	l := Level(strings.ToLower(level))
	if l != LevelError && l != LevelInfo && l != LevelDebug {
		return nil, fmt.Errorf("invalid log level: %v", level)
	}
	return &LevelLogger{logger: logger, level: l}, nil
}

/*
Level returns the current filtering level.
*/
func (ll *LevelLogger) Level() Level {
	return ll.level
}

/*
LogError logs an error-level message. Always passed through.
*/
func (ll *LevelLogger) LogError(m ...interface{}) {
	ll.logger.LogError(m...)
}

/*
LogInfo logs an info-level message. Suppressed when the level is error-only.
*/
func (ll *LevelLogger) LogInfo(m ...interface{}) {
	if ll.level == LevelInfo || ll.level == LevelDebug {
		ll.logger.LogInfo(m...)
	}
}

/*
LogDebug logs a debug-level message. Only passed through at debug level.
*/
func (ll *LevelLogger) LogDebug(m ...interface{}) {
	if ll.level == LevelDebug {
		ll.logger.LogDebug(m...)
	}
}

// Backends
// ========

/*
StdLogger writes every message to the standard library's log package.
*/
type StdLogger struct{}

// NewStdLogger returns a Logger that writes to the standard log package.
func NewStdLogger() *StdLogger {
	return &StdLogger{}
}

func (*StdLogger) LogError(m ...interface{}) {
	log.Print("error: " + fmt.Sprint(m...))
}

func (*StdLogger) LogInfo(m ...interface{}) {
	log.Print(fmt.Sprint(m...))
}

func (*StdLogger) LogDebug(m ...interface{}) {
	log.Print("debug: " + fmt.Sprint(m...))
}

/*
NullLogger discards every message. It is the parser's default when no
logger option is supplied.
*/
type NullLogger struct{}

// NewNullLogger returns a Logger that discards everything.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) LogError(m ...interface{}) {}
func (*NullLogger) LogInfo(m ...interface{})  {}
func (*NullLogger) LogDebug(m ...interface{}) {}
