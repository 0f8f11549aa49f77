// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package identity

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Describe writes a markdown table of every certificate held by id: the
// trusted roots added from the CA file, then the client chain.
//
// An identity without certificates produces a one-line note instead.
func Describe(w io.Writer, id *Identity) error {
	if id == nil || (len(id.Authorities) == 0 && len(id.Chain) == 0) {
		_, err := fmt.Fprintln(w, "No CA or client certificate configured; using the system trust store.")
		return err
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Role", "Subject", "Issuer", "Valid Until", "Key"})

	var rows [][]string
	for _, cert := range id.Authorities {
		rows = append(rows, row(len(rows)+1, "Trusted Root", cert))
	}
	for i, cert := range id.Chain {
		role := "Client Intermediate"
		if i == 0 {
			role = "Client Certificate"
		}
		rows = append(rows, row(len(rows)+1, role, cert))
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func row(n int, role string, cert *x509.Certificate) []string {
	return []string{
		fmt.Sprintf("%d", n),
		role,
		cert.Subject.CommonName,
		cert.Issuer.CommonName,
		cert.NotAfter.UTC().Format("2006-01-02"),
		keyDescription(cert),
	}
}

func keyDescription(cert *x509.Certificate) string {
	switch pub := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return fmt.Sprintf("%d-bit RSA", pub.Size()*8)
	case *ecdsa.PublicKey:
		return fmt.Sprintf("%d-bit ECDSA", pub.Curve.Params().BitSize)
	case ed25519.PublicKey:
		return "Ed25519"
	default:
		return "unknown"
	}
}
