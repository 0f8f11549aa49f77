// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBufferInterface verifies that bytebufferpool.ByteBuffer satisfies Buffer interface
func TestBufferInterface(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		check func(t *testing.T, buf Buffer)
	}{
		{
			name: "Write byte slice",
			setup: func(buf Buffer) {
				buf.Write([]byte("hello"))
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "hello", buf.String())
				assert.Equal(t, 5, buf.Len())
			},
		},
		{
			name: "Multiple operations",
			setup: func(buf Buffer) {
				buf.Write([]byte("hello"))
				buf.WriteString(" test")
				buf.WriteByte('!')
			},
			check: func(t *testing.T, buf Buffer) {
				expected := "hello test!"
				assert.Equal(t, expected, buf.String())
				assert.Equal(t, []byte(expected), buf.Bytes())
			},
		},
		{
			name: "SetString",
			setup: func(buf Buffer) {
				buf.WriteString("initial")
				buf.SetString("new content")
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "new content", buf.String())
			},
		},
		{
			name: "Reset clears buffer",
			setup: func(buf Buffer) {
				buf.WriteString("data to clear")
				buf.Reset()
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, 0, buf.Len(), "Reset() failed, buffer still contains data: %q", buf.Bytes())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			tt.setup(buf)
			tt.check(t, buf)
		})
	}
}

// TestBufferReadFromError verifies ReadFrom handles read errors
func TestBufferReadFromError(t *testing.T) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	_, err := buf.ReadFrom(iotest.ErrReader(io.ErrUnexpectedEOF))
	assert.Equal(t, io.ErrUnexpectedEOF, err, "ReadFrom error")
}

// TestChunk verifies Chunk hands out slices of the requested length.
func TestChunk(t *testing.T) {
	tests := []struct {
		name    string
		prefill string
		size    int
		wantLen int
	}{
		{name: "Fresh buffer", size: 1024, wantLen: 1024},
		{name: "Prefilled buffer grows", prefill: "abc", size: 4096, wantLen: 4096},
		{name: "Smaller than capacity", prefill: strings.Repeat("x", 8192), size: 16, wantLen: 16},
		{name: "Zero size", size: 0, wantLen: 0},
		{name: "Negative size", size: -1, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			buf.WriteString(tt.prefill)
			chunk := Chunk(buf, tt.size)
			assert.Len(t, chunk, tt.wantLen)
		})
	}
}

// TestChunkReuse verifies a chunk obtained after Reset reuses pooled storage.
func TestChunkReuse(t *testing.T) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	first := Chunk(buf, 512)
	first[0] = 'A'
	buf.Reset()

	second := Chunk(buf, 256)
	require.Len(t, second, 256)
	assert.Equal(t, &first[0], &second[0], "expected the same backing array")
}

// TestChunkNonPooledBuffer verifies Chunk falls back to a fresh allocation.
func TestChunkNonPooledBuffer(t *testing.T) {
	plain := newPlainBuffer()
	assert.Len(t, Chunk(plain, 64), 64)
}

// TestPoolPutNonByteBuffer verifies Put handles non-ByteBuffer types gracefully
func TestPoolPutNonByteBuffer(t *testing.T) {
	plain := newPlainBuffer()
	Default.Put(plain)
}

// TestGoroutineCooking verifies the pool is safe for concurrent use
func TestGoroutineCooking(t *testing.T) {
	const goroutines = 50
	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			for range iterations {
				buf := Default.Get()
				chunk := Chunk(buf, 128)
				chunk[127] = 1
				buf.Reset()
				Default.Put(buf)
			}
		}()
	}

	wg.Wait()
}

// TestPoolInterfaceImplementation verifies pool type implements Pool interface
func TestPoolInterfaceImplementation(t *testing.T) {
	var _ Pool = &pool{}
	var _ Pool = Default
}
