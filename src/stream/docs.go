// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package stream copies a response body into a sink in fixed-size chunks.
//
// Bytes are forwarded verbatim and in order, with no decoding. Memory use is
// bounded by one chunk taken from the shared buffer pool, so arbitrarily
// large bodies can be streamed.
//
// Example usage:
//
//	n, err := stream.Stream(resp, os.Stdout)
//	if err != nil {
//		// apierr.KindRead or apierr.KindWrite
//	}
package stream
