// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package identity

import (
	"crypto/tls"
	"crypto/x509"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
	x509certs "github.com/H0llyW00dzZ/apictl/src/internal/x509/certs"
)

// Identity is the TLS material assembled from [Material].
//
// Roots is nil when no CA certificate was supplied, in which case the
// platform trust store is used unchanged. Certificate is nil when no client
// identity was supplied.
type Identity struct {
	Roots       *x509.CertPool
	Authorities []*x509.Certificate

	Certificate *tls.Certificate
	// Chain holds the client leaf followed by any intermediates.
	Chain []*x509.Certificate
}

// HasClientCertificate reports whether a client identity is present.
func (id *Identity) HasClientCertificate() bool {
	return id != nil && id.Certificate != nil && len(id.Certificate.Certificate) > 0
}

// Build parses m into an [Identity].
//
// A present CA certificate is parsed and added to a copy of the system trust
// store. A present certificate/key pair is parsed, bundled and unbundled
// through PKCS#12. An empty Material yields an empty Identity.
func Build(m *Material) (*Identity, error) {
	id := &Identity{}
	if m == nil {
		return id, nil
	}

	decoder := x509certs.New()

	if len(m.CA) > 0 {
		authorities, err := decodeAuthorities(decoder, m.CA)
		if err != nil {
			return nil, apierr.New(apierr.KindCertParse, "ca-cert", err)
		}

		roots, err := x509.SystemCertPool()
		if err != nil || roots == nil {
			roots = x509.NewCertPool()
		}
		for _, cert := range authorities {
			// Register the canonical DER form, not whatever wrapper the file used.
			canonical, err := x509.ParseCertificate(decoder.EncodeDER(cert))
			if err != nil {
				return nil, apierr.New(apierr.KindCertParse, "ca-cert", err)
			}
			roots.AddCert(canonical)
		}

		id.Roots = roots
		id.Authorities = authorities
	}

	hasCert, hasKey := len(m.ClientCert) > 0, len(m.ClientKey) > 0
	switch {
	case hasCert && hasKey:
		chain, err := decoder.DecodeMultiple(m.ClientCert)
		if err != nil {
			return nil, apierr.New(apierr.KindCertParse, "client-cert", err)
		}
		key, err := decoder.DecodePrivateKey(m.ClientKey)
		if err != nil {
			return nil, apierr.New(apierr.KindKeyParse, "client-key", err)
		}
		if !publicKeyMatches(chain[0], key) {
			return nil, apierr.New(apierr.KindKeyParse, "client-key", ErrKeyMismatch)
		}

		cert, err := bundle(key, chain)
		if err != nil {
			return nil, apierr.New(apierr.KindBundle, "client identity", err)
		}

		id.Certificate = cert
		id.Chain = chain
	case hasCert || hasKey:
		return nil, apierr.New(apierr.KindUsage, "client identity", ErrIncompletePair)
	}

	return id, nil
}

// decodeAuthorities accepts a PEM bundle, concatenated DER, or PKCS#7.
func decodeAuthorities(decoder *x509certs.Certificate, data []byte) ([]*x509.Certificate, error) {
	certs, err := decoder.DecodeMultiple(data)
	if err == nil {
		return certs, nil
	}

	cert, derr := decoder.Decode(data)
	if derr != nil {
		return nil, err
	}
	return []*x509.Certificate{cert}, nil
}
