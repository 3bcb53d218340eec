package sink_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tickdown/internal/faults"
	"tickdown/internal/sink"
)

func await(t *testing.T, s *sink.File) error {
	t.Helper()
	select {
	case err := <-s.Done():
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("sink did not complete")
		return nil
	}
}

func TestWriteThenCloseDeliversBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tmp", "out.gif")
	s, err := sink.NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	chunk := []byte("GIF89a-ish payload")
	if _, err := s.Write(chunk); err != nil {
		t.Fatalf("Write: %v", err)
	}
	// The sink copies chunks, so the caller may clobber its buffer.
	chunk[0] = 'X'

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := await(t, s); err != nil {
		t.Fatalf("Done: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "GIF89a-ish payload" {
		t.Fatalf("unexpected output: %q", data)
	}
}

func TestCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "tmp", "out.gif")
	s, err := sink.NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	_ = s.Close()
	if err := await(t, s); err != nil {
		t.Fatalf("Done: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestWriteAfterCloseFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	s, err := sink.NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := s.Write([]byte("late")); !errors.Is(err, faults.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	_ = await(t, s)
}

func TestAbortRemovesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	s, err := sink.NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if _, err := s.Write([]byte("partial")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	s.Abort()
	err = await(t, s)
	if !errors.Is(err, faults.ErrIO) {
		t.Fatalf("expected ErrIO from aborted stream, got %v", err)
	}
	if !errors.Is(err, sink.ErrAborted) {
		t.Fatalf("expected ErrAborted cause, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("expected partial file removed, stat err = %v", statErr)
	}
	// Writes after the failure are refused.
	if _, werr := s.Write([]byte("more")); !errors.Is(werr, faults.ErrIO) {
		t.Fatalf("expected ErrIO after abort, got %v", werr)
	}
}

func TestSecondSinkOnSamePathIsRefused(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	first, err := sink.NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	if _, err := sink.NewFile(path); !errors.Is(err, faults.ErrIO) {
		t.Fatalf("expected ErrIO for locked path, got %v", err)
	}

	_ = first.Close()
	if err := await(t, first); err != nil {
		t.Fatalf("Done: %v", err)
	}

	// After the first stream completes the path is writable again.
	second, err := sink.NewFile(path)
	if err != nil {
		t.Fatalf("NewFile after unlock: %v", err)
	}
	_ = second.Close()
	_ = await(t, second)
}
