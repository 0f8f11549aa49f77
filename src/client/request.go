// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package client

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
	"golang.org/x/net/http/httpguts"
)

// defaultContentType is applied when a body is set without a Content-Type.
const defaultContentType = "application/json"

// RequestBuilder accumulates a request description. It is not safe for
// concurrent use; build it on one goroutine and hand it to MakeRequest.
type RequestBuilder struct {
	method string
	url    *url.URL
	header http.Header
	query  url.Values
	body   io.Reader
}

// NewRequestBuilder starts a request for method against the absolute URL u.
func NewRequestBuilder(method string, u *url.URL) *RequestBuilder {
	return &RequestBuilder{
		method: method,
		url:    u,
		header: make(http.Header),
		query:  make(url.Values),
	}
}

// Header adds a header value; repeated keys accumulate.
func (b *RequestBuilder) Header(key, value string) *RequestBuilder {
	b.header.Add(key, value)
	return b
}

// ContentType sets the Content-Type header, replacing any earlier value.
func (b *RequestBuilder) ContentType(value string) *RequestBuilder {
	b.header.Set("Content-Type", value)
	return b
}

// Query adds a query parameter; repeated keys accumulate.
func (b *RequestBuilder) Query(key, value string) *RequestBuilder {
	b.query.Add(key, value)
	return b
}

// Body sets the request body. The reader is consumed once, when the request is sent.
func (b *RequestBuilder) Body(r io.Reader) *RequestBuilder {
	b.body = r
	return b
}

// BodyBytes sets the request body from p.
func (b *RequestBuilder) BodyBytes(p []byte) *RequestBuilder {
	if p == nil {
		b.body = nil
		return b
	}
	return b.Body(bytes.NewReader(p))
}

// Method returns the request method.
func (b *RequestBuilder) Method() string { return b.method }

// URL returns the target URL without the builder's extra query parameters.
func (b *RequestBuilder) URL() string {
	if b.url == nil {
		return ""
	}
	return b.url.String()
}

// Request is a finalized, validated request description.
type Request struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   io.Reader
}

// String returns "METHOD URL".
func (r *Request) String() string { return r.Method + " " + r.URL.String() }

// Build validates the builder and returns the finalized [Request].
// Invalid methods, header names or values, and non-absolute URLs fail with
// a RequestBuildError.
func (b *RequestBuilder) Build() (*Request, error) {
	op := b.method + " " + b.URL()

	if b.method == "" || !httpguts.ValidHeaderFieldName(b.method) {
		return nil, apierr.Errorf(apierr.KindRequestBuild, op, "invalid method %q", b.method)
	}
	if b.url == nil || b.url.Host == "" || b.url.Scheme == "" {
		return nil, apierr.Errorf(apierr.KindRequestBuild, op, "URL must be absolute")
	}
	for key, values := range b.header {
		if !httpguts.ValidHeaderFieldName(key) {
			return nil, apierr.Errorf(apierr.KindRequestBuild, op, "invalid header name %q", key)
		}
		for _, v := range values {
			if !httpguts.ValidHeaderFieldValue(v) {
				return nil, apierr.Errorf(apierr.KindRequestBuild, op, "invalid value for header %q", key)
			}
		}
	}

	u := *b.url
	if len(b.query) > 0 {
		q, err := url.ParseQuery(u.RawQuery)
		if err != nil {
			return nil, apierr.New(apierr.KindRequestBuild, op, fmt.Errorf("parse query: %w", err))
		}
		for key, values := range b.query {
			q[key] = append(q[key], values...)
		}
		u.RawQuery = q.Encode()
	}

	header := b.header.Clone()
	if b.body != nil && header.Get("Content-Type") == "" {
		header.Set("Content-Type", defaultContentType)
	}

	return &Request{
		Method: b.method,
		URL:    &u,
		Header: header,
		Body:   b.body,
	}, nil
}
