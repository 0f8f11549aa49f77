// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package client

import "context"

// API is the capability every transport offers to endpoint resolvers.
type API interface {
	// RequestBuilder starts a request for method and a path relative to the
	// base URL. It performs no I/O and never fails.
	RequestBuilder(method, relativePath string) *RequestBuilder

	// MakeRequest finalizes b and performs exactly one exchange. It returns a
	// Response for any HTTP status; errors are reserved for invalid requests
	// and transport failures.
	MakeRequest(ctx context.Context, b *RequestBuilder) (*Response, error)
}
