package logx

import (
	"io"
	"time"
)

// ChannelOption controls how channel names are rendered.
type ChannelOption struct {
	// NameLength pads or truncates channel names to a fixed width.
	// Zero keeps the natural width.
	NameLength int
	// DisplayName toggles the "(channel)" suffix after the logger name.
	DisplayName bool
	// NamePadding fills short names up to NameLength.
	NamePadding string
}

// StreamOption controls console output.
type StreamOption struct {
	Enable   bool
	WithDate bool
	Color    bool
	Level    Level
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// FileOption controls file output.
type FileOption struct {
	Enable bool
	// RootDir is the directory log directories are created under.
	// Required when Enable is true.
	RootDir string
	// DirName defaults to the logger name.
	DirName string
	// FileName defaults to "<logger name>.log".
	FileName string
	Level    Level
	// MaxBytes rotates the file when it would exceed this size.
	// Zero disables size rotation.
	MaxBytes int64
	// RotateEvery rotates the file once it has been open this long.
	// Zero disables time rotation. Both modes can be active at once.
	RotateEvery time.Duration
	// BackupCount keeps this many rotated files; zero truncates in place.
	BackupCount int
}

// Option configures a Logger.
type Option struct {
	Name       string
	ExtendName string
	Channel    ChannelOption
	Stream     StreamOption
	File       FileOption
}

// DefaultOption returns the standard configuration: colored console output
// at Info and no file output.
func DefaultOption(name string) Option {
	return Option{
		Name: name,
		Channel: ChannelOption{
			DisplayName: true,
			NamePadding: ".",
		},
		Stream: StreamOption{
			Enable: true,
			Color:  true,
			Level:  LevelInfo,
		},
		File: FileOption{
			Level:       LevelInfo,
			MaxBytes:    1 << 20,
			RotateEvery: 24 * time.Hour,
			BackupCount: 3,
		},
	}
}
