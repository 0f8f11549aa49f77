// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"strings"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
	"github.com/cloudflare/cfssl/helpers/derhelpers"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificates indicates that the input held no certificate at all.
	ErrNoCertificates = errors.New("x509certs: no certificates found")

	// ErrNoPrivateKey indicates that no PEM block carrying a private key was found.
	ErrNoPrivateKey = errors.New("x509certs: no private key block found")

	// ErrEncryptedPrivateKey indicates a passphrase-protected key, which is not supported.
	ErrEncryptedPrivateKey = errors.New("x509certs: encrypted private keys are not supported")

	// ErrParsePrivateKey indicates a failure to parse the private key DER bytes.
	ErrParsePrivateKey = errors.New("x509certs: failed to parse private key")
)

// Certificate provides methods to decode and encode [X.509] certificates and
// their private keys.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes a PEM block and checks its type.
func (c *Certificate) decodePEMBlock(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != c.certBlockType {
		return nil, ErrInvalidBlockType
	}
	return block, nil
}

// DecodeMultiple decodes every certificate in data, in order.
//
// PEM input may hold several CERTIFICATE blocks; DER input may hold
// concatenated certificates. An input without any certificate fails
// with [ErrNoCertificates].
func (c *Certificate) DecodeMultiple(data []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate

	if c.IsPEM(data) {
		for len(data) > 0 {
			block, rest := pem.Decode(data)
			if block == nil {
				break
			}
			if block.Type != c.certBlockType {
				return nil, ErrInvalidBlockType
			}

			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, ErrParseCertificate
			}

			certs = append(certs, cert)
			data = rest
		}
	} else {
		var err error
		if certs, err = x509.ParseCertificates(data); err != nil {
			return nil, ErrParseCertificate
		}
	}

	if len(certs) == 0 {
		return nil, ErrNoCertificates
	}
	return certs, nil
}

// Decode decodes a single certificate from data.
//
// PEM and DER are tried first; PKCS#7 bundles fall back to Cloudflare's
// parser and yield their first certificate.
func (c *Certificate) Decode(data []byte) (*x509.Certificate, error) {
	if c.IsPEM(data) {
		block, err := c.decodePEMBlock(data)
		if err != nil {
			return nil, err
		}

		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificates
	}

	return p.Content.SignedData.Certificates[0], nil
}

// DecodePrivateKey decodes the first private key found in PEM data.
//
// PKCS#1, PKCS#8 and SEC 1 encodings are accepted. Blocks that do not carry a
// private key (for example "EC PARAMETERS") are skipped.
func (c *Certificate) DecodePrivateKey(data []byte) (crypto.Signer, error) {
	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		data = rest

		if !strings.HasSuffix(block.Type, "PRIVATE KEY") {
			continue
		}
		if block.Type == "ENCRYPTED PRIVATE KEY" || block.Headers["Proc-Type"] != "" {
			return nil, ErrEncryptedPrivateKey
		}

		key, err := derhelpers.ParsePrivateKeyDER(block.Bytes)
		if err != nil {
			return nil, ErrParsePrivateKey
		}
		return key, nil
	}

	return nil, ErrNoPrivateKey
}

// EncodePEM encodes a certificate to PEM format.
func (c *Certificate) EncodePEM(cert *x509.Certificate) []byte {
	block := pem.Block{
		Type:  c.certBlockType,
		Bytes: cert.Raw,
	}
	return pem.EncodeToMemory(&block)
}

// EncodeDER encodes a certificate to DER format.
func (c *Certificate) EncodeDER(cert *x509.Certificate) []byte { return cert.Raw }
