// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
	"github.com/H0llyW00dzZ/apictl/src/client/clienttest"
	"github.com/H0llyW00dzZ/apictl/src/endpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petsYAML = `
operations:
  - name: get-pet
    method: get
    path: /pets/{id}
    description: Fetch one pet
    params:
      - name: id
        in: path
      - name: fields
      - name: X-Tenant
        in: header
        required: true
  - name: create-pet
    method: POST
    path: /pets
    body:
      required: true
      schema:
        type: object
        required: [name]
        properties:
          name: {type: string}
          age: {type: integer, minimum: 0}
  - name: list-pets
    method: GET
    path: /pets
`

const petsJSON = `{
  "operations": [
    {"name": "delete-pet", "method": "DELETE", "path": "/owners/{owner}/pets/{id}",
     "params": [{"name": "owner", "in": "path"}, {"name": "id", "in": "path"}]},
    {"name": "upload", "method": "PUT", "path": "/files", "body": {"contentType": "application/octet-stream"}}
  ]
}`

func loadPets(t *testing.T) *endpoint.Catalogue {
	t.Helper()
	c, err := endpoint.ParseCatalogue([]byte(petsYAML), endpoint.FormatYAML)
	require.NoError(t, err)
	return c
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]endpoint.Format{
		"ops.yaml":      endpoint.FormatYAML,
		"ops.YML":       endpoint.FormatYAML,
		"ops.json":      endpoint.FormatJSON,
		"ops":           endpoint.FormatJSON,
		"dir.yaml/file": endpoint.FormatJSON,
	}
	for path, want := range tests {
		assert.Equal(t, want, endpoint.DetectFormat(path), path)
	}
}

func TestLoadCatalogue(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "pets.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(petsYAML), 0o600))
	jsonPath := filepath.Join(dir, "pets.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(petsJSON), 0o600))

	c, err := endpoint.LoadCatalogue(yamlPath)
	require.NoError(t, err)
	ops := c.Operations()
	require.Len(t, ops, 3)
	assert.Equal(t, "get-pet", ops[0].Name)
	assert.Equal(t, "GET", ops[0].Method, "methods are normalized")
	assert.Equal(t, endpoint.InQuery, ops[0].Params[1].In, "location defaults to query")

	c, err = endpoint.LoadCatalogue(jsonPath)
	require.NoError(t, err)
	op, ok := c.Lookup("delete-pet")
	require.True(t, ok)
	assert.True(t, op.Params[0].Required, "path params are required")

	_, err = endpoint.LoadCatalogue(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, apierr.IO)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0o600))
	_, err = endpoint.LoadCatalogue(broken)
	assert.ErrorIs(t, err, apierr.Resolve)
}

func TestParseCatalogueRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"no name", `{"operations":[{"method":"GET","path":"/a"}]}`, "name is empty"},
		{"no method", `{"operations":[{"name":"a","path":"/a"}]}`, "method is empty"},
		{"no path", `{"operations":[{"name":"a","method":"GET"}]}`, "path is empty"},
		{"duplicate", `{"operations":[{"name":"a","method":"GET","path":"/a"},{"name":"a","method":"GET","path":"/b"}]}`, "duplicate operation"},
		{"bad location", `{"operations":[{"name":"a","method":"GET","path":"/a","params":[{"name":"x","in":"cookie"}]}]}`, "unknown location"},
		{"undeclared placeholder", `{"operations":[{"name":"a","method":"GET","path":"/a/{id}"}]}`, "has no path parameter"},
		{"unused path param", `{"operations":[{"name":"a","method":"GET","path":"/a","params":[{"name":"id","in":"path"}]}]}`, "does not appear"},
		{"unterminated", `{"operations":[{"name":"a","method":"GET","path":"/a/{id"}]}`, "unterminated"},
		{"unbalanced", `{"operations":[{"name":"a","method":"GET","path":"/a/id}"}]}`, "unbalanced"},
		{"bad schema", `{"operations":[{"name":"a","method":"POST","path":"/a","body":{"schema":{"type":42}}}]}`, "invalid body schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := endpoint.ParseCatalogue([]byte(tt.doc), endpoint.FormatJSON)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCatalogueResolve(t *testing.T) {
	c := loadPets(t)

	t.Run("path, query and header params", func(t *testing.T) {
		req, body := build(t, c, endpoint.Call{
			Name:    "get-pet",
			Params:  map[string]string{"id": "a b/c", "fields": "name", "X-Tenant": "acme"},
			Headers: map[string]string{"Accept": "application/json"},
		})

		assert.Equal(t, "GET", req.Method)
		assert.Equal(t, "/v1/pets/a b/c", req.URL.Path)
		assert.Equal(t, "https://api.example.com/v1/pets/a%20b%2Fc?fields=name", req.URL.String())
		assert.Equal(t, "acme", req.Header.Get("X-Tenant"))
		assert.Equal(t, "application/json", req.Header.Get("Accept"))
		assert.Nil(t, body)
	})

	t.Run("valid body", func(t *testing.T) {
		req, body := build(t, c, endpoint.Call{Name: "create-pet", Body: []byte(`{"name":"rex","age":3}`)})
		assert.Equal(t, "POST", req.Method)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"name":"rex","age":3}`, string(body))
	})

	t.Run("operation content type", func(t *testing.T) {
		cj, err := endpoint.ParseCatalogue([]byte(petsJSON), endpoint.FormatJSON)
		require.NoError(t, err)
		req, _ := build(t, cj, endpoint.Call{Name: "upload", Body: []byte{0, 1, 2}})
		assert.Equal(t, "application/octet-stream", req.Header.Get("Content-Type"))
	})
}

func TestCatalogueResolveErrors(t *testing.T) {
	c := loadPets(t)

	tests := []struct {
		name string
		call endpoint.Call
		want string
	}{
		{"unknown operation", endpoint.Call{Name: "feed-pet"}, "unknown operation"},
		{"unknown param", endpoint.Call{Name: "list-pets", Params: map[string]string{"limt": "1"}}, `unknown parameter "limt"`},
		{"missing params", endpoint.Call{Name: "get-pet"}, "missing required parameters: id, X-Tenant"},
		{"empty path param", endpoint.Call{Name: "get-pet", Params: map[string]string{"id": "", "X-Tenant": "a"}}, "is empty"},
		{"missing body", endpoint.Call{Name: "create-pet"}, "request body is required"},
		{"unexpected body", endpoint.Call{Name: "list-pets", Body: []byte("{}")}, "takes no body"},
		{"invalid JSON body", endpoint.Call{Name: "create-pet", Body: []byte("{")}, "not valid JSON"},
		{"schema violation", endpoint.Call{Name: "create-pet", Body: []byte(`{"age":-1}`)}, "does not match schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := clienttest.New("https://api.example.com", nil)
			_, err := c.Resolve(api, tt.call)
			require.Error(t, err)
			assert.ErrorIs(t, err, apierr.Resolve)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, api.Requests(), "resolution errors never reach the transport")
		})
	}
}

func TestCatalogueDescribe(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, loadPets(t).Describe(&buf))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "OPERATION")
	assert.Contains(t, out, "get-pet")
	assert.Contains(t, out, "/pets/{id}")
	assert.Contains(t, out, "id (path, required)")
	assert.Contains(t, out, "Fetch one pet")

	empty, err := endpoint.ParseCatalogue([]byte(`{"operations":[]}`), endpoint.FormatJSON)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, empty.Describe(&buf))
	assert.Equal(t, "No operations defined.\n", buf.String())
}
