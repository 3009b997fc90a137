package logx

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// fileSink appends log lines to a file and rotates it by size, by age, or
// both.
type fileSink struct {
	path    string
	f       *os.File
	size    int64
	max     int64
	every   time.Duration
	backups int
	opened  time.Time
	now     func() time.Time
}

func newFileSink(opt FileOption, loggerName string) (*fileSink, error) {
	if opt.RootDir == "" {
		return nil, fmt.Errorf("logx: file output requires a root directory")
	}
	if info, err := os.Stat(opt.RootDir); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("logx: %s is not a directory", opt.RootDir)
	}
	dirName := opt.DirName
	if dirName == "" {
		dirName = loggerName
	}
	fileName := opt.FileName
	if fileName == "" {
		fileName = loggerName + ".log"
	}
	dir := filepath.Join(opt.RootDir, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logx: create log dir: %w", err)
	}
	s := &fileSink{
		path:    filepath.Join(dir, fileName),
		max:     opt.MaxBytes,
		every:   opt.RotateEvery,
		backups: opt.BackupCount,
		now:     time.Now,
	}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileSink) open() error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("logx: open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return err
	}
	s.f = f
	s.size = info.Size()
	s.opened = s.now()
	return nil
}

func (s *fileSink) write(line []byte) error {
	if s.due(int64(len(line))) {
		if err := s.rotate(); err != nil {
			return err
		}
	}
	n, err := s.f.Write(line)
	s.size += int64(n)
	return err
}

// due reports whether the next write of n bytes should rotate first. A
// fresh empty file never rotates, so one oversized line still lands.
func (s *fileSink) due(n int64) bool {
	if s.size == 0 {
		return false
	}
	if s.max > 0 && s.size+n > s.max {
		return true
	}
	return s.every > 0 && s.now().Sub(s.opened) >= s.every
}

func (s *fileSink) rotate() error {
	if err := s.f.Close(); err != nil {
		return err
	}
	if s.backups <= 0 {
		if err := os.Truncate(s.path, 0); err != nil {
			return err
		}
		return s.open()
	}
	_ = os.Remove(fmt.Sprintf("%s.%d", s.path, s.backups))
	for i := s.backups - 1; i >= 1; i-- {
		_ = os.Rename(fmt.Sprintf("%s.%d", s.path, i), fmt.Sprintf("%s.%d", s.path, i+1))
	}
	if err := os.Rename(s.path, s.path+".1"); err != nil {
		return err
	}
	return s.open()
}

func (s *fileSink) close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
