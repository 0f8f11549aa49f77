// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package identity

import (
	"errors"
	"os"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
)

// ErrIncompletePair indicates that only one half of the client certificate/key pair was supplied.
var ErrIncompletePair = errors.New("identity: --client-cert and --client-key must be given together")

// Paths names the credential files. Empty fields are not loaded.
type Paths struct {
	CA         string
	ClientCert string
	ClientKey  string
}

// Material holds raw credential bytes as read from disk.
type Material struct {
	CA         []byte
	ClientCert []byte
	ClientKey  []byte
}

// Load reads the whole file at path. The file is closed before Load returns.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apierr.New(apierr.KindIO, "load "+path, err)
	}
	return data, nil
}

// LoadMaterial validates paths and reads each named file in turn: CA
// certificate, client certificate, client key. The first failure stops the
// sequence.
func LoadMaterial(p Paths) (*Material, error) {
	if (p.ClientCert == "") != (p.ClientKey == "") {
		return nil, apierr.New(apierr.KindUsage, "client identity", ErrIncompletePair)
	}

	m := &Material{}
	steps := []struct {
		path string
		dst  *[]byte
	}{
		{p.CA, &m.CA},
		{p.ClientCert, &m.ClientCert},
		{p.ClientKey, &m.ClientKey},
	}

	for _, s := range steps {
		if s.path == "" {
			continue
		}
		data, err := Load(s.path)
		if err != nil {
			return nil, err
		}
		*s.dst = data
	}

	return m, nil
}
