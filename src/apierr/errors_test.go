// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package apierr_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{
			name:     "Same kind",
			err:      apierr.New(apierr.KindTransport, "GET https://example.com", io.ErrUnexpectedEOF),
			target:   apierr.Transport,
			expected: true,
		},
		{
			name:     "Different kind",
			err:      apierr.New(apierr.KindRead, "stream", io.ErrUnexpectedEOF),
			target:   apierr.Write,
			expected: false,
		},
		{
			name:     "Wrapped twice",
			err:      fmt.Errorf("outer: %w", apierr.New(apierr.KindCertParse, "ca-cert", nil)),
			target:   apierr.CertParse,
			expected: true,
		},
		{
			name:     "Cause still reachable",
			err:      apierr.New(apierr.KindRead, "stream", io.ErrUnexpectedEOF),
			target:   io.ErrUnexpectedEOF,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.Is(tt.err, tt.target))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *apierr.Error
		expected string
	}{
		{
			name:     "Kind with op and cause",
			err:      apierr.New(apierr.KindIO, "load ca-cert", errors.New("no such file")),
			expected: "IoError: load ca-cert: no such file",
		},
		{
			name:     "Non-success status",
			err:      apierr.Status("GET https://api.example.com/v1/widgets", 404),
			expected: "NonSuccessStatus: GET https://api.example.com/v1/widgets: 404 Not Found",
		},
		{
			name:     "Bare kind",
			err:      apierr.Usage,
			expected: "UsageError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			assert.Equal(t, tt.expected, msg)
			assert.False(t, strings.Contains(msg, "\n"), "error must render on one line")
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, apierr.KindURLParse, apierr.KindOf(fmt.Errorf("x: %w", apierr.New(apierr.KindURLParse, "", nil))))
	assert.Equal(t, apierr.KindUnknown, apierr.KindOf(errors.New("plain")))
	assert.Equal(t, "Kind(99)", apierr.Kind(99).String())
}
