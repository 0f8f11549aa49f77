// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package client_test

import (
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
	"github.com/H0llyW00dzZ/apictl/src/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestRequestBuilderBuild(t *testing.T) {
	base := "https://api.example.com/v1/widgets?fields=id"

	t.Run("headers and query accumulate", func(t *testing.T) {
		req, err := client.NewRequestBuilder("GET", mustURL(t, base)).
			Header("X-Trace", "a").
			Header("X-Trace", "b").
			Query("limit", "10").
			Query("tag", "x").
			Query("tag", "y").
			Build()
		require.NoError(t, err)

		assert.Equal(t, "GET", req.Method)
		assert.Equal(t, []string{"a", "b"}, req.Header.Values("X-Trace"))
		q := req.URL.Query()
		assert.Equal(t, "id", q.Get("fields"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, []string{"x", "y"}, q["tag"])
		assert.Nil(t, req.Body)
		assert.Empty(t, req.Header.Get("Content-Type"))
	})

	t.Run("body defaults to JSON", func(t *testing.T) {
		req, err := client.NewRequestBuilder("POST", mustURL(t, base)).
			BodyBytes([]byte(`{"name":"w"}`)).
			Build()
		require.NoError(t, err)

		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		got, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"w"}`, string(got))
	})

	t.Run("explicit content type wins", func(t *testing.T) {
		req, err := client.NewRequestBuilder("PUT", mustURL(t, base)).
			Body(strings.NewReader("plain")).
			ContentType("text/plain").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "text/plain", req.Header.Get("Content-Type"))
	})

	t.Run("build does not mutate the builder URL", func(t *testing.T) {
		b := client.NewRequestBuilder("GET", mustURL(t, base)).Query("limit", "1")
		_, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, base, b.URL())
	})

	invalid := []struct {
		name    string
		builder func() *client.RequestBuilder
	}{
		{"empty method", func() *client.RequestBuilder {
			return client.NewRequestBuilder("", mustURL(t, base))
		}},
		{"method with space", func() *client.RequestBuilder {
			return client.NewRequestBuilder("GE T", mustURL(t, base))
		}},
		{"relative URL", func() *client.RequestBuilder {
			return client.NewRequestBuilder("GET", mustURL(t, "/widgets"))
		}},
		{"header name", func() *client.RequestBuilder {
			return client.NewRequestBuilder("GET", mustURL(t, base)).Header("Bad Header", "v")
		}},
		{"header value", func() *client.RequestBuilder {
			return client.NewRequestBuilder("GET", mustURL(t, base)).Header("X-Ok", "line\r\nbreak")
		}},
	}

	for _, tt := range invalid {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := tt.builder().Build()
			require.Error(t, err)
			assert.ErrorIs(t, err, apierr.RequestBuild)
		})
	}
}
