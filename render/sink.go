package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives complete frames. Every frame replaces the previous one, so a
// redrawn chart never leaves a stale document behind.
type Sink interface {
	WriteFrame(frame []byte) error
}

// Buffer keeps the latest frame in memory.
type Buffer struct {
	bytes.Buffer
}

func (b *Buffer) WriteFrame(frame []byte) error {
	b.Reset()
	_, err := b.Write(frame)
	return err
}

// FileSink replaces the file at the path with every frame. The frame is
// written to a temporary file next to it and renamed into place, so a failed
// write leaves the previous content untouched.
type FileSink string

func (p FileSink) WriteFrame(frame []byte) (err error) {
	path := string(p)
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	_, werr := tmp.Write(frame)
	cerr := tmp.Close()
	if err = errors.Join(werr, cerr); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
