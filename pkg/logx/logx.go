package logx

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Callback receives every message logged at the level it was registered
// for, after the message has been written to the sinks.
type Callback func(msg string, lg *Logger)

// Logger writes leveled messages to a console stream and an optional file,
// organized into named channels.
type Logger struct {
	mu        sync.Mutex
	opt       Option
	name      string
	level     Level
	stream    StreamOption
	file      *fileSink
	fileLevel Level
	channels  map[string]*Channel
	callbacks map[Level][]Callback
}

// New creates a logger from opt. See DefaultOption.
func New(opt Option) (*Logger, error) {
	name := opt.Name
	if name == "" {
		name = "logx"
	}
	if opt.ExtendName != "" {
		name = name + "-" + opt.ExtendName
	}
	l := &Logger{
		opt:       opt,
		name:      name,
		level:     LevelVerbose,
		stream:    opt.Stream,
		fileLevel: opt.File.Level,
		channels:  make(map[string]*Channel),
		callbacks: make(map[Level][]Callback),
	}
	if l.stream.Writer == nil {
		l.stream.Writer = os.Stderr
	}
	if opt.File.Enable {
		sink, err := newFileSink(opt.File, name)
		if err != nil {
			return nil, err
		}
		l.file = sink
	}
	return l, nil
}

// Name returns the resolved logger name.
func (l *Logger) Name() string {
	return l.name
}

// Channel returns the channel with the given name, creating it on first
// use. The empty name is the default channel and renders without a suffix.
func (l *Logger) Channel(name string) *Channel {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok := l.channels[name]; ok {
		return c
	}
	c := &Channel{
		lg:        l,
		name:      name,
		display:   l.displayName(name),
		enabled:   true,
		callbacks: make(map[Level][]Callback),
	}
	l.channels[name] = c
	return c
}

func (l *Logger) displayName(name string) string {
	if name == "" || !l.opt.Channel.DisplayName {
		return ""
	}
	width := l.opt.Channel.NameLength
	if width > 0 {
		if len(name) > width {
			name = name[:width]
		} else {
			pad := l.opt.Channel.NamePadding
			if pad == "" {
				pad = "."
			}
			name = strings.Repeat(pad, width-len(name)) + name
		}
	}
	return "(" + name + ")"
}

// SetLevel sets the master threshold; messages below it are discarded
// before reaching any sink.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// SetStream enables or disables console output.
func (l *Logger) SetStream(enable bool) {
	l.mu.Lock()
	l.stream.Enable = enable
	l.mu.Unlock()
}

// SetFile enables or disables file output, opening the sink on demand.
func (l *Logger) SetFile(enable bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if enable == (l.file != nil) {
		return nil
	}
	if !enable {
		err := l.file.close()
		l.file = nil
		return err
	}
	sink, err := newFileSink(l.opt.File, l.name)
	if err != nil {
		return err
	}
	l.file = sink
	return nil
}

// OnLevel registers a callback for every message logged at level.
func (l *Logger) OnLevel(level Level, cb Callback) {
	l.mu.Lock()
	l.callbacks[level] = append(l.callbacks[level], cb)
	l.mu.Unlock()
}

// ClearCallbacks removes the logger-scoped callbacks for level.
func (l *Logger) ClearCallbacks(level Level) {
	l.mu.Lock()
	delete(l.callbacks, level)
	l.mu.Unlock()
}

// Close flushes and closes the file sink.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.close()
	l.file = nil
	return err
}

// emit writes one line to the enabled sinks and fires the logger-scoped
// callbacks. Called by channels. Returns false when the master level
// dropped the message, so channel callbacks stay in step with logger ones.
func (l *Logger) emit(display string, level Level, msg string) bool {
	l.mu.Lock()
	if level < l.level {
		l.mu.Unlock()
		return false
	}
	now := time.Now().Format(timeLayout)
	base := fmt.Sprintf("[%s]%s %s: %s", l.name, display, level, msg)

	if l.stream.Enable && level >= l.stream.Level {
		line := base
		if l.stream.WithDate {
			line = now + " - " + line
		}
		if l.stream.Color {
			line = colorize(level, line)
		}
		fmt.Fprintln(l.stream.Writer, line)
	}
	if l.file != nil && level >= l.fileLevel {
		line := fmt.Sprintf("%s - %s\n", now, base)
		_ = l.file.write([]byte(line))
	}
	cbs := append([]Callback(nil), l.callbacks[level]...)
	l.mu.Unlock()

	for _, cb := range cbs {
		cb(msg, l)
	}
	return true
}

// Log writes msg to the default channel at level.
func (l *Logger) Log(level Level, format string, args ...any) {
	l.Channel("").Log(level, format, args...)
}

// Verbose logs at LevelVerbose on the default channel.
func (l *Logger) Verbose(format string, args ...any) { l.Log(LevelVerbose, format, args...) }

// Debug logs at LevelDebug on the default channel.
func (l *Logger) Debug(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Info logs at LevelInfo on the default channel.
func (l *Logger) Info(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Success logs at LevelSuccess on the default channel.
func (l *Logger) Success(format string, args ...any) { l.Log(LevelSuccess, format, args...) }

// Warning logs at LevelWarning on the default channel.
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }

// Error logs at LevelError on the default channel.
func (l *Logger) Error(format string, args ...any) { l.Log(LevelError, format, args...) }

// Critical logs at LevelCritical on the default channel.
func (l *Logger) Critical(format string, args ...any) { l.Log(LevelCritical, format, args...) }

// Columns logs cells as a single separated row, each cell left-justified
// to width.
func (l *Logger) Columns(level Level, width int, sep string, cells ...string) {
	l.Channel("").Columns(level, width, sep, cells...)
}

// Channel is a named sub-stream of a Logger.
type Channel struct {
	lg        *Logger
	name      string
	display   string
	enabled   bool
	mu        sync.Mutex
	callbacks map[Level][]Callback
}

// Name returns the channel name.
func (c *Channel) Name() string {
	return c.name
}

// SetEnabled toggles the channel; a disabled channel drops everything.
func (c *Channel) SetEnabled(enable bool) {
	c.mu.Lock()
	c.enabled = enable
	c.mu.Unlock()
}

// OnLevel registers a callback for messages logged on this channel at
// level.
func (c *Channel) OnLevel(level Level, cb Callback) {
	c.mu.Lock()
	c.callbacks[level] = append(c.callbacks[level], cb)
	c.mu.Unlock()
}

// ClearCallbacks removes the channel-scoped callbacks for level.
func (c *Channel) ClearCallbacks(level Level) {
	c.mu.Lock()
	delete(c.callbacks, level)
	c.mu.Unlock()
}

// Log writes a formatted message at level.
func (c *Channel) Log(level Level, format string, args ...any) {
	c.mu.Lock()
	enabled := c.enabled
	cbs := append([]Callback(nil), c.callbacks[level]...)
	c.mu.Unlock()
	if !enabled {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if !c.lg.emit(c.display, level, msg) {
		return
	}
	for _, cb := range cbs {
		cb(msg, c.lg)
	}
}

// Verbose logs at LevelVerbose.
func (c *Channel) Verbose(format string, args ...any) { c.Log(LevelVerbose, format, args...) }

// Debug logs at LevelDebug.
func (c *Channel) Debug(format string, args ...any) { c.Log(LevelDebug, format, args...) }

// Info logs at LevelInfo.
func (c *Channel) Info(format string, args ...any) { c.Log(LevelInfo, format, args...) }

// Success logs at LevelSuccess.
func (c *Channel) Success(format string, args ...any) { c.Log(LevelSuccess, format, args...) }

// Warning logs at LevelWarning.
func (c *Channel) Warning(format string, args ...any) { c.Log(LevelWarning, format, args...) }

// Error logs at LevelError.
func (c *Channel) Error(format string, args ...any) { c.Log(LevelError, format, args...) }

// Critical logs at LevelCritical.
func (c *Channel) Critical(format string, args ...any) { c.Log(LevelCritical, format, args...) }

// Columns logs cells as a single separated row, each cell left-justified
// to width.
func (c *Channel) Columns(level Level, width int, sep string, cells ...string) {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", width, cell)
	}
	sep = sep + " "
	c.Log(level, "%s", sep+strings.Join(padded, sep))
}
