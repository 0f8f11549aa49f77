// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs provides decoding and encoding operations for [X.509]
// certificates and their private keys. It supports [PEM], DER and [PKCS7]
// certificate input, and PKCS#1, PKCS#8 and SEC 1 private keys. The TLS
// identity builder uses it to parse the CA and client credential files.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
