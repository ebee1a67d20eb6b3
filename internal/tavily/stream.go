package tavily

import (
	"io"

	"github.com/scout-ai/scout/internal/errors"
)

// streamChunkSize bounds a single chunk read.
const streamChunkSize = 4096

// Stream is a lazy, forward-only, non-restartable sequence of byte chunks
// from a streaming response body. Next blocks until network data arrives;
// canceling the request context closes the underlying connection and ends
// the stream.
type Stream struct {
	body   io.ReadCloser
	closed bool
}

func newStream(body io.ReadCloser) *Stream {
	return &Stream{body: body}
}

// Next returns the next chunk. It returns io.EOF when the stream is
// exhausted and a stream error for mid-stream failures (including
// cancellation of the request context). Every return is a non-empty chunk
// or an error; a reader's legal (0, nil) result is retried internally.
func (s *Stream) Next() ([]byte, error) {
	if s.closed {
		return nil, io.EOF
	}

	buf := make([]byte, streamChunkSize)
	for {
		n, err := s.body.Read(buf)
		if n > 0 {
			return buf[:n], nil
		}
		if err == io.EOF {
			s.Close()
			return nil, io.EOF
		}
		if err != nil {
			s.Close()
			return nil, errors.Wrap(err, errors.CodeStreamFailed, "stream read failed", errors.CategoryTemporary)
		}
	}
}

// Close releases the underlying connection. Safe to call more than once.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.body.Close()
}
