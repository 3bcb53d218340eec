package sink

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"tickdown/internal/faults"
)

// ErrAborted is the failure recorded when a session tears the sink down
// before the stream is finished.
var ErrAborted = errors.New("sink aborted")

// File consumes an encoded byte stream on a background goroutine and writes
// it to a single output file. Completion is asynchronous: Done fires after the
// final byte is flushed and synced (or after cleanup on failure). A write
// failure is sticky and short-circuits every subsequent Write, and the partial
// output file is removed.
//
// The output path is guarded by an advisory flock so two sessions cannot
// interleave writes to the same name.
type File struct {
	path string
	lock *flock.Flock
	ch   chan []byte
	done chan error

	mu     sync.Mutex
	closed bool
	failed error
}

// NewFile opens the output file for streaming, creating the parent directory
// if absent and acquiring the write lock.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, faults.Wrap(faults.ErrIO, "sink", "create output directory", filepath.Dir(path), err)
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, faults.Wrap(faults.ErrIO, "sink", "acquire lock", path, err)
	}
	if !ok {
		return nil, faults.Wrap(faults.ErrIO, "sink", "acquire lock", "another session is writing "+path, nil)
	}

	file, err := os.Create(path)
	if err != nil {
		_ = lock.Unlock()
		return nil, faults.Wrap(faults.ErrIO, "sink", "create output file", path, err)
	}

	s := &File{
		path: path,
		lock: lock,
		ch:   make(chan []byte, 64),
		done: make(chan error, 1),
	}
	go s.drain(file)
	return s, nil
}

// Path returns the output file location.
func (s *File) Path() string {
	return s.path
}

// Done reports the terminal result of the stream: nil after a durable flush,
// or the first failure. It fires exactly once, after Close or Abort.
func (s *File) Done() <-chan error {
	return s.done
}

// Write hands a chunk of encoded bytes to the background writer. The chunk is
// copied, so callers may reuse their buffers.
func (s *File) Write(p []byte) (int, error) {
	s.mu.Lock()
	if s.failed != nil {
		err := s.failed
		s.mu.Unlock()
		return 0, faults.Wrap(faults.ErrIO, "sink", "write", s.path, err)
	}
	if s.closed {
		s.mu.Unlock()
		return 0, faults.Wrap(faults.ErrIO, "sink", "write", "stream already closed", nil)
	}
	s.mu.Unlock()

	chunk := make([]byte, len(p))
	copy(chunk, p)
	s.ch <- chunk
	return len(p), nil
}

// Close seals the stream. The result arrives on Done once the writer has
// flushed, synced, and closed the file.
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.ch)
	return nil
}

// Abort fails the stream and discards the partial output file.
func (s *File) Abort() {
	s.fail(ErrAborted)
	_ = s.Close()
}

func (s *File) fail(err error) {
	s.mu.Lock()
	if s.failed == nil {
		s.failed = err
	}
	s.mu.Unlock()
}

func (s *File) drain(file *os.File) {
	writer := bufio.NewWriter(file)

	for chunk := range s.ch {
		if s.failure() != nil {
			continue
		}
		if _, err := writer.Write(chunk); err != nil {
			s.fail(err)
		}
	}

	err := s.failure()
	if err == nil {
		if ferr := writer.Flush(); ferr != nil {
			s.fail(ferr)
			err = ferr
		}
	}
	if err == nil {
		if serr := file.Sync(); serr != nil {
			s.fail(serr)
			err = serr
		}
	}
	if cerr := file.Close(); cerr != nil && err == nil {
		s.fail(cerr)
		err = cerr
	}

	if err != nil {
		// Never leave a half-written animation behind.
		_ = os.Remove(s.path)
	}
	_ = s.lock.Unlock()

	if err != nil {
		s.done <- faults.Wrap(faults.ErrIO, "sink", "stream", s.path, err)
	} else {
		s.done <- nil
	}
	close(s.done)
}

func (s *File) failure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}
