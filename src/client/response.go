// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package client

import (
	"errors"
	"io"
	"net/http"
	"sync/atomic"
)

// ErrBodyConsumed is returned when a response body is requested a second time.
var ErrBodyConsumed = errors.New("client: response body already consumed")

// Response is a received status line and headers plus a body that can be
// taken exactly once.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header

	body  io.ReadCloser
	taken atomic.Bool
}

// NewResponse wraps a status, headers and body. A nil body is treated as empty.
func NewResponse(statusCode int, status string, header http.Header, body io.ReadCloser) *Response {
	if body == nil {
		body = http.NoBody
	}
	if header == nil {
		header = make(http.Header)
	}
	if status == "" {
		status = http.StatusText(statusCode)
	}
	return &Response{
		StatusCode: statusCode,
		Status:     status,
		Header:     header,
		body:       body,
	}
}

// Body hands out the body stream. The caller owns it and must close it.
// Every later call fails with [ErrBodyConsumed].
func (r *Response) Body() (io.ReadCloser, error) {
	if !r.taken.CompareAndSwap(false, true) {
		return nil, ErrBodyConsumed
	}
	return r.body, nil
}

// Close releases the connection when the body was never taken.
func (r *Response) Close() error {
	if !r.taken.CompareAndSwap(false, true) {
		return nil
	}
	return r.body.Close()
}

// Success reports whether the status code is in the 2xx range.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}
