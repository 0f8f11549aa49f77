// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package bridge runs one invocation end to end: resolve the call, perform
// the exchange, stream the body and apply the status policy.
//
// The body of a non-2xx response is streamed in full before the
// NonSuccessStatus error is returned, so error payloads from the server
// always reach the sink.
package bridge
