package logzer

import (
	"fmt"
	"os"
	"sync"
)

// LogFile is an io.Writer that appends to FilePath and rotates the
// file once it would exceed MaxSize bytes. Rotate sets how many
// rotated files are kept, 0 discards the full file.
type LogFile struct {
	FilePath string
	MaxSize  int64
	Rotate   int

	mu   sync.Mutex
	file *os.File
	size int64
}

// Write implements io.Writer.
func (f *LogFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		if err := f.open(); err != nil {
			return 0, err
		}
	}
	if f.MaxSize > 0 && f.size+int64(len(p)) > f.MaxSize {
		f.rotate()
	}

	n, err := f.file.Write(p)
	if err != nil {
		// the file may have been removed underneath, retry once
		if err = f.open(); err == nil {
			n, err = f.file.Write(p)
		}
	}
	f.size += int64(n)
	return n, err
}

// Close implements io.Closer.
func (f *LogFile) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return nil
	}
	return f.file.Close()
}

func (f *LogFile) open() error {
	if f.file != nil {
		_ = f.file.Close()
	}
	file, err := os.OpenFile(f.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	f.file, f.size = file, 0
	if info, err := file.Stat(); err == nil {
		f.size = info.Size()
	}
	return nil
}

func (f *LogFile) rotate() {
	name := f.file.Name()
	_ = f.file.Close()
	f.file = nil

	if f.Rotate < 1 {
		_ = os.Remove(name)
	} else {
		for i := f.Rotate; i > 1; i-- {
			_ = os.Rename(fmt.Sprintf("%s.%d", name, i-1), fmt.Sprintf("%s.%d", name, i))
		}
		_ = os.Rename(name, name+".1")
	}
	_ = f.open()
}
