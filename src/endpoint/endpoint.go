// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"maps"
	"slices"
	"strings"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
	"github.com/H0llyW00dzZ/apictl/src/client"
)

// Call is one parsed invocation.
type Call struct {
	// Name selects a catalogue operation. Raw ignores it.
	Name string
	// Args holds positional arguments.
	Args []string
	// Params holds named parameters (path, query or header, per resolver).
	Params map[string]string
	// Headers are extra request headers.
	Headers map[string]string
	// Body is the request payload; nil means no body.
	Body []byte
	// ContentType overrides the body's Content-Type.
	ContentType string
}

// Resolver maps a Call onto a request builder for api.
type Resolver interface {
	Resolve(api client.API, call Call) (*client.RequestBuilder, error)
}

// ResolverFunc adapts a function to [Resolver].
type ResolverFunc func(api client.API, call Call) (*client.RequestBuilder, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(api client.API, call Call) (*client.RequestBuilder, error) {
	return f(api, call)
}

// Raw resolves "METHOD PATH" arguments. Params become query parameters.
type Raw struct{}

var _ Resolver = Raw{}

// Resolve implements [Resolver].
func (Raw) Resolve(api client.API, call Call) (*client.RequestBuilder, error) {
	if len(call.Args) != 2 {
		return nil, apierr.Errorf(apierr.KindResolve, "request", "want METHOD PATH, got %d arguments", len(call.Args))
	}
	method := strings.ToUpper(strings.TrimSpace(call.Args[0]))
	if method == "" {
		return nil, apierr.Errorf(apierr.KindResolve, "request", "method is empty")
	}

	b := api.RequestBuilder(method, call.Args[1])
	for _, key := range slices.Sorted(maps.Keys(call.Params)) {
		b.Query(key, call.Params[key])
	}
	applyHeaders(b, call.Headers)
	applyBody(b, call.Body, call.ContentType)
	return b, nil
}

func applyHeaders(b *client.RequestBuilder, headers map[string]string) {
	for _, key := range slices.Sorted(maps.Keys(headers)) {
		b.Header(key, headers[key])
	}
}

func applyBody(b *client.RequestBuilder, body []byte, contentType string) {
	if body == nil {
		return
	}
	b.BodyBytes(body)
	if contentType != "" {
		b.ContentType(contentType)
	}
}
