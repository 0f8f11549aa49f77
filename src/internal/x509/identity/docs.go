// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package identity assembles the TLS material presented by the client:
//   - Additional trusted roots taken from a CA certificate file, added on top
//     of the platform trust store.
//   - A client identity (certificate + private key) for mutual TLS.
//
// The client certificate and key are parsed independently, packed into a
// [PKCS#12] container protected by an internal passphrase and unpacked again
// into the [tls.Certificate] handed to the transport. Both files must be
// given together; supplying only one of them is a usage error reported before
// any file is read.
//
// [PKCS#12]: https://grokipedia.com/page/PKCS_12
package identity
