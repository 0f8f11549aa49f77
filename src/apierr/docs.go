// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package apierr defines the error taxonomy shared by every stage of a request:
// credential loading, TLS identity assembly, client construction, request
// execution and response streaming.
//
// Each failure is an [*Error] tagged with a [Kind]. Kinds are compared with
// [errors.Is] against the exported sentinels:
//
//	if errors.Is(err, apierr.Transport) {
//		// network, TLS or timeout failure
//	}
//
// [NonSuccessStatus] is special: it is returned only after the response body
// has been delivered to the output sink, so callers must not emit the body again.
package apierr
