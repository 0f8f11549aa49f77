// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package stream

import (
	"errors"
	"io"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
	"github.com/H0llyW00dzZ/apictl/src/client"
	"github.com/H0llyW00dzZ/apictl/src/internal/helper/gc"
)

// DefaultChunkSize is the chunk size used when a Streamer leaves it unset.
const DefaultChunkSize = 32 * 1024

// Streamer copies response bodies chunk by chunk.
// The zero value uses DefaultChunkSize and the default buffer pool.
type Streamer struct {
	ChunkSize int
	Pool      gc.Pool
}

// Stream copies resp's body into sink with a zero-value [Streamer].
func Stream(resp *client.Response, sink io.Writer) (int64, error) {
	return Streamer{}.Stream(resp, sink)
}

// Stream reads resp's body chunk by chunk and writes every chunk to sink
// before reading the next. It returns the number of bytes written.
//
// A read failure yields a ReadError and a failed or short write a
// WriteError; bytes already written stay in the sink. The body is closed on
// every path.
func (s Streamer) Stream(resp *client.Response, sink io.Writer) (int64, error) {
	body, err := resp.Body()
	if err != nil {
		return 0, apierr.New(apierr.KindRead, "read body", err)
	}
	defer body.Close()

	size := s.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	pool := s.Pool
	if pool == nil {
		pool = gc.Default
	}

	buf := pool.Get()
	defer func() {
		buf.Reset() // Reset the buffer to prevent data leaks
		pool.Put(buf)
	}()
	chunk := gc.Chunk(buf, size)

	var written int64
	for {
		n, rerr := body.Read(chunk)
		if n > 0 {
			w, werr := sink.Write(chunk[:n])
			if w < 0 || w > n {
				w, werr = 0, errors.Join(werr, errors.New("invalid write count"))
			}
			written += int64(w)
			if werr == nil && w != n {
				werr = io.ErrShortWrite
			}
			if werr != nil {
				return written, apierr.New(apierr.KindWrite, "write body", werr)
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, apierr.New(apierr.KindRead, "read body", rerr)
		}
	}
}
