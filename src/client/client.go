// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package client

import (
	"context"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
)

// RequestBuilder joins relativePath onto the base URL and starts a request.
func (c *Client) RequestBuilder(method, relativePath string) *RequestBuilder {
	return NewRequestBuilder(method, JoinPath(c.baseURL, relativePath))
}

// MakeRequest performs exactly one exchange for b.
//
// The response body is left unread; the caller streams it through
// [Response.Body] and closes it. Any HTTP status is returned as a Response.
func (c *Client) MakeRequest(ctx context.Context, b *RequestBuilder) (*Response, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}

	if c.verbose {
		c.log.Println(req.String())
	}

	r := c.rc.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)
	for key, values := range req.Header {
		r.Header[key] = append([]string(nil), values...)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL.String())
	if err != nil {
		if resp != nil && resp.RawBody() != nil {
			resp.RawBody().Close()
		}
		return nil, apierr.New(apierr.KindTransport, req.String(), err)
	}

	if c.verbose {
		c.log.Printf("%d", resp.StatusCode())
	}

	return NewResponse(resp.StatusCode(), resp.Status(), resp.Header(), resp.RawBody()), nil
}
