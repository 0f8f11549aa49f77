// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package client builds and executes authenticated HTTP requests against a
// single base URL.
//
// The [API] interface separates request construction from execution:
// endpoint resolvers only ever call RequestBuilder to describe a request, and
// the caller decides when MakeRequest sends it. [Client] is the production
// implementation backed by [resty]; the clienttest package provides a recorder
// that never touches the network.
//
// Non-2xx responses are not errors at this layer. MakeRequest returns a
// [Response] for every status code and leaves the success policy to the caller.
//
// [resty]: https://github.com/go-resty/resty
package client
