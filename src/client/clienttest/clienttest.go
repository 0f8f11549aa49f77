// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package clienttest provides an in-memory [client.API] for tests.
package clienttest

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
	"github.com/H0llyW00dzZ/apictl/src/client"
)

// Responder produces the reply for a recorded request.
type Responder func(req *client.Request) (*client.Response, error)

// Recorder records every request it is asked to make and answers with Respond.
// The zero Respond replies 200 with an empty body.
type Recorder struct {
	BaseURL *url.URL
	Respond Responder

	mu       sync.Mutex
	requests []*client.Request
	bodies   [][]byte
}

var _ client.API = (*Recorder)(nil)

// New returns a Recorder rooted at base. It panics on an unparsable base,
// which is always a test bug.
func New(base string, respond Responder) *Recorder {
	u, err := url.Parse(base)
	if err != nil {
		panic("clienttest: " + err.Error())
	}
	return &Recorder{BaseURL: u, Respond: respond}
}

// RequestBuilder implements [client.API].
func (r *Recorder) RequestBuilder(method, relativePath string) *client.RequestBuilder {
	return client.NewRequestBuilder(method, client.JoinPath(r.BaseURL, relativePath))
}

// MakeRequest builds b, records it and its body, and returns Respond's reply.
func (r *Recorder) MakeRequest(ctx context.Context, b *client.RequestBuilder) (*client.Response, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, apierr.New(apierr.KindTransport, req.String(), err)
	}

	var body []byte
	if req.Body != nil {
		if body, err = io.ReadAll(req.Body); err != nil {
			return nil, err
		}
		req.Body = bytes.NewReader(body)
	}

	r.mu.Lock()
	r.requests = append(r.requests, req)
	r.bodies = append(r.bodies, body)
	r.mu.Unlock()

	if r.Respond == nil {
		return Reply(http.StatusOK, "")(req)
	}
	return r.Respond(req)
}

// Requests returns the recorded requests in order.
func (r *Recorder) Requests() []*client.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*client.Request(nil), r.requests...)
}

// Body returns the body sent with the i-th request, nil when there was none.
func (r *Recorder) Body(i int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bodies[i]
}

// Reply answers every request with status and body.
func Reply(status int, body string) Responder {
	return func(*client.Request) (*client.Response, error) {
		return client.NewResponse(status, "", nil, io.NopCloser(strings.NewReader(body))), nil
	}
}

// ReplyBody answers every request with status and an arbitrary body stream.
func ReplyBody(status int, body io.ReadCloser) Responder {
	return func(*client.Request) (*client.Response, error) {
		return client.NewResponse(status, "", nil, body), nil
	}
}

// Fail answers every request with err.
func Fail(err error) Responder {
	return func(*client.Request) (*client.Response, error) {
		return nil, err
	}
}
