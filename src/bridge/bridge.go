// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bridge

import (
	"context"
	"io"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
	"github.com/H0llyW00dzZ/apictl/src/client"
	"github.com/H0llyW00dzZ/apictl/src/endpoint"
	"github.com/H0llyW00dzZ/apictl/src/stream"
)

// Result summarizes a completed exchange.
type Result struct {
	StatusCode int
	Status     string
	Written    int64
}

// Invoker runs calls with a configurable streamer.
type Invoker struct {
	Streamer stream.Streamer
}

// Invoke runs call with a zero-value [Invoker].
func Invoke(ctx context.Context, api client.API, resolver endpoint.Resolver, call endpoint.Call, sink io.Writer) (*Result, error) {
	return Invoker{}.Invoke(ctx, api, resolver, call, sink)
}

// Invoke resolves call, performs exactly one request and streams the
// response body into sink.
//
// The Result is non-nil whenever a response was received, including when
// streaming fails or the status is outside 200-299; in the latter case the
// returned error is a NonSuccessStatus carrying the status code.
func (iv Invoker) Invoke(ctx context.Context, api client.API, resolver endpoint.Resolver, call endpoint.Call, sink io.Writer) (*Result, error) {
	b, err := resolver.Resolve(api, call)
	if err != nil {
		return nil, err
	}

	resp, err := api.MakeRequest(ctx, b)
	if err != nil {
		return nil, err
	}

	res := &Result{StatusCode: resp.StatusCode, Status: resp.Status}
	res.Written, err = iv.Streamer.Stream(resp, sink)
	if err != nil {
		return res, err
	}

	if !resp.Success() {
		return res, apierr.Status(b.Method()+" "+b.URL(), resp.StatusCode)
	}
	return res, nil
}
