// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"io"
	"os"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
)

// outputSink is the response destination. An output file is only created
// once there is something to put in it, so a request that fails before any
// response arrives leaves an existing file as it was.
type outputSink struct {
	w    io.Writer
	path string
	f    *os.File
}

// newSink returns a sink for the configured output. An empty path or "-"
// means stdout.
func (a *App) newSink() *outputSink {
	path := a.settings.Output
	if path == "" || path == "-" {
		return &outputSink{w: a.Stdout}
	}
	return &outputSink{path: path}
}

func (s *outputSink) Write(p []byte) (int, error) {
	if s.w == nil {
		if err := s.open(); err != nil {
			return 0, err
		}
	}
	return s.w.Write(p)
}

func (s *outputSink) open() error {
	f, err := os.Create(s.path)
	if err != nil {
		return apierr.New(apierr.KindIO, "open "+s.path, err)
	}
	s.f, s.w = f, f
	return nil
}

// finish closes the output file. When received is true the file is created
// even if the response body was empty.
func (s *outputSink) finish(received bool) error {
	if s.path == "" {
		return nil
	}
	if s.f == nil {
		if !received {
			return nil
		}
		if err := s.open(); err != nil {
			return err
		}
	}
	if err := s.f.Close(); err != nil {
		return apierr.New(apierr.KindWrite, "close "+s.path, err)
	}
	return nil
}
