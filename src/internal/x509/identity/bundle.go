// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package identity

import (
	"bytes"
	"crypto"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"golang.org/x/crypto/pkcs12"
	gopkcs12 "software.sslmate.com/src/go-pkcs12"
)

// bundlePassphrase protects the PKCS#12 container for the instant it exists
// in memory between encoding and decoding. It never leaves the process.
const bundlePassphrase = "apictl-ephemeral-identity"

// ErrKeyMismatch indicates that the private key does not belong to the client certificate.
var ErrKeyMismatch = errors.New("identity: private key does not match client certificate")

// bundle packs key and chain into a PKCS#12 container and unpacks the
// container into a [tls.Certificate]. chain[0] is the leaf.
func bundle(key crypto.Signer, chain []*x509.Certificate) (*tls.Certificate, error) {
	pfx, err := gopkcs12.Legacy.Encode(key, chain[0], chain[1:], bundlePassphrase)
	if err != nil {
		return nil, fmt.Errorf("encode pkcs12: %w", err)
	}

	blocks, err := pkcs12.ToPEM(pfx, bundlePassphrase)
	if err != nil {
		return nil, fmt.Errorf("decode pkcs12: %w", err)
	}

	var certPEM, keyPEM bytes.Buffer
	for _, b := range blocks {
		// Drop bag attributes (friendlyName, localKeyId).
		block := &pem.Block{Type: b.Type, Bytes: b.Bytes}
		dst := &certPEM
		if b.Type != "CERTIFICATE" {
			dst = &keyPEM
		}
		if err := pem.Encode(dst, block); err != nil {
			return nil, fmt.Errorf("encode pem: %w", err)
		}
	}

	pair, err := tls.X509KeyPair(certPEM.Bytes(), keyPEM.Bytes())
	if err != nil {
		return nil, fmt.Errorf("load key pair: %w", err)
	}
	return &pair, nil
}

// publicKeyMatches reports whether key is the private half of cert's public key.
func publicKeyMatches(cert *x509.Certificate, key crypto.Signer) bool {
	pub, ok := key.Public().(interface{ Equal(crypto.PublicKey) bool })
	if !ok {
		return false
	}
	return pub.Equal(cert.PublicKey)
}
