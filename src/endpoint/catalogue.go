// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
	"github.com/H0llyW00dzZ/apictl/src/client"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Format is a catalogue file format.
type Format int

const (
	// FormatJSON represents JSON catalogues (.json and unknown extensions)
	FormatJSON Format = iota
	// FormatYAML represents YAML catalogues (.yaml, .yml)
	FormatYAML
)

// Location says where a parameter is placed in the request.
type Location string

const (
	InPath   Location = "path"
	InQuery  Location = "query"
	InHeader Location = "header"
)

// Param describes one named operation parameter.
type Param struct {
	Name        string   `json:"name" yaml:"name"`
	In          Location `json:"in,omitempty" yaml:"in,omitempty"`
	Required    bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Body describes an operation's request payload.
type Body struct {
	Required    bool           `json:"required,omitempty" yaml:"required,omitempty"`
	ContentType string         `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	Schema      map[string]any `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Operation is one named API call.
type Operation struct {
	Name        string  `json:"name" yaml:"name"`
	Method      string  `json:"method" yaml:"method"`
	Path        string  `json:"path" yaml:"path"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Params      []Param `json:"params,omitempty" yaml:"params,omitempty"`
	Body        *Body   `json:"body,omitempty" yaml:"body,omitempty"`

	schema *gojsonschema.Schema
}

// catalogueFile is the on-disk document shape.
type catalogueFile struct {
	Operations []*Operation `json:"operations" yaml:"operations"`
}

// Catalogue resolves calls by operation name.
type Catalogue struct {
	ops   map[string]*Operation
	order []*Operation
}

var _ Resolver = (*Catalogue)(nil)

// DetectFormat determines the catalogue format from the file extension,
// case-insensitively.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadCatalogue reads and parses the catalogue at path.
func LoadCatalogue(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apierr.New(apierr.KindIO, "load "+path, err)
	}
	c, err := ParseCatalogue(data, DetectFormat(path))
	if err != nil {
		return nil, apierr.New(apierr.KindResolve, "load "+path, err)
	}
	return c, nil
}

// ParseCatalogue decodes and validates a catalogue document.
//
// Every operation needs a unique name, a method and a path. Parameters
// default to the query string; path template placeholders must name a
// declared path parameter, and path parameters are always required. Body
// schemas are compiled up front so a broken schema fails here, not mid-call.
func ParseCatalogue(data []byte, format Format) (*Catalogue, error) {
	var doc catalogueFile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML catalogue: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON catalogue: %w", err)
		}
	}

	c := &Catalogue{ops: make(map[string]*Operation, len(doc.Operations))}
	for i, op := range doc.Operations {
		if op == nil {
			return nil, fmt.Errorf("operation #%d is empty", i+1)
		}
		if err := op.prepare(); err != nil {
			return nil, fmt.Errorf("operation %q: %w", op.Name, err)
		}
		if _, dup := c.ops[op.Name]; dup {
			return nil, fmt.Errorf("duplicate operation %q", op.Name)
		}
		c.ops[op.Name] = op
		c.order = append(c.order, op)
	}
	return c, nil
}

func (op *Operation) prepare() error {
	if op.Name == "" {
		return errors.New("name is empty")
	}
	op.Method = strings.ToUpper(strings.TrimSpace(op.Method))
	if op.Method == "" {
		return errors.New("method is empty")
	}
	if op.Path == "" {
		return errors.New("path is empty")
	}

	seen := make(map[string]bool, len(op.Params))
	for i := range op.Params {
		p := &op.Params[i]
		if p.Name == "" {
			return fmt.Errorf("parameter #%d has no name", i+1)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate parameter %q", p.Name)
		}
		seen[p.Name] = true

		switch p.In {
		case "":
			p.In = InQuery
		case InPath:
			p.Required = true
		case InQuery, InHeader:
		default:
			return fmt.Errorf("parameter %q: unknown location %q", p.Name, p.In)
		}
	}

	placeholders, err := placeholders(op.Path)
	if err != nil {
		return err
	}
	for _, name := range placeholders {
		p := op.param(name)
		if p == nil || p.In != InPath {
			return fmt.Errorf("path placeholder {%s} has no path parameter", name)
		}
	}
	for _, p := range op.Params {
		if p.In == InPath && !slices.Contains(placeholders, p.Name) {
			return fmt.Errorf("path parameter %q does not appear in %q", p.Name, op.Path)
		}
	}

	if op.Body != nil && len(op.Body.Schema) > 0 {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(op.Body.Schema))
		if err != nil {
			return fmt.Errorf("invalid body schema: %w", err)
		}
		op.schema = schema
	}
	return nil
}

func (op *Operation) param(name string) *Param {
	for i := range op.Params {
		if op.Params[i].Name == name {
			return &op.Params[i]
		}
	}
	return nil
}

// Operations returns the operations in declaration order.
func (c *Catalogue) Operations() []Operation {
	out := make([]Operation, 0, len(c.order))
	for _, op := range c.order {
		out = append(out, *op)
	}
	return out
}

// Lookup returns the named operation.
func (c *Catalogue) Lookup(name string) (Operation, bool) {
	op, ok := c.ops[name]
	if !ok {
		return Operation{}, false
	}
	return *op, true
}

// Resolve implements [Resolver].
//
// Unknown operations, unknown or missing required parameters, and bodies that
// are missing, unexpected or fail the operation's schema yield a ResolveError.
func (c *Catalogue) Resolve(api client.API, call Call) (*client.RequestBuilder, error) {
	opName := "call " + call.Name

	op, ok := c.ops[call.Name]
	if !ok {
		return nil, apierr.Errorf(apierr.KindResolve, opName, "unknown operation %q", call.Name)
	}

	for _, name := range slices.Sorted(maps.Keys(call.Params)) {
		if op.param(name) == nil {
			return nil, apierr.Errorf(apierr.KindResolve, opName, "unknown parameter %q", name)
		}
	}
	var missing []string
	for _, p := range op.Params {
		if _, ok := call.Params[p.Name]; !ok && p.Required {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		return nil, apierr.Errorf(apierr.KindResolve, opName, "missing required parameters: %s", strings.Join(missing, ", "))
	}

	if err := op.checkBody(call.Body); err != nil {
		return nil, apierr.New(apierr.KindResolve, opName, err)
	}

	path, err := fill(op.Path, call.Params)
	if err != nil {
		return nil, apierr.New(apierr.KindResolve, opName, err)
	}

	b := api.RequestBuilder(op.Method, path)
	for _, p := range op.Params {
		value, ok := call.Params[p.Name]
		if !ok {
			continue
		}
		switch p.In {
		case InQuery:
			b.Query(p.Name, value)
		case InHeader:
			b.Header(p.Name, value)
		}
	}
	applyHeaders(b, call.Headers)

	contentType := call.ContentType
	if contentType == "" && op.Body != nil {
		contentType = op.Body.ContentType
	}
	applyBody(b, call.Body, contentType)
	return b, nil
}

func (op *Operation) checkBody(body []byte) error {
	switch {
	case op.Body == nil && body != nil:
		return fmt.Errorf("operation %q takes no body", op.Name)
	case op.Body == nil:
		return nil
	case body == nil && op.Body.Required:
		return errors.New("request body is required")
	case body == nil || op.schema == nil:
		return nil
	}

	result, err := op.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("request body is not valid JSON: %w", err)
	}
	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			reasons = append(reasons, e.String())
		}
		return fmt.Errorf("request body does not match schema: %s", strings.Join(reasons, "; "))
	}
	return nil
}

// placeholders returns the {name} placeholders of a path template in order.
func placeholders(template string) ([]string, error) {
	var names []string
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		closeIdx := strings.IndexByte(rest, '}')
		switch {
		case open < 0 && closeIdx < 0:
			return names, nil
		case open < 0 || (closeIdx >= 0 && closeIdx < open):
			return nil, fmt.Errorf("unbalanced '}' in path %q", template)
		case closeIdx < 0:
			return nil, fmt.Errorf("unterminated '{' in path %q", template)
		}
		name := rest[open+1 : closeIdx]
		if name == "" || strings.ContainsAny(name, "{/") {
			return nil, fmt.Errorf("invalid placeholder in path %q", template)
		}
		names = append(names, name)
		rest = rest[closeIdx+1:]
	}
}

// fill substitutes path-escaped values for every placeholder.
func fill(template string, values map[string]string) (string, error) {
	var sb strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			sb.WriteString(rest)
			return sb.String(), nil
		}
		closeIdx := strings.IndexByte(rest[open:], '}') + open
		name := rest[open+1 : closeIdx]
		value, ok := values[name]
		if !ok {
			return "", fmt.Errorf("no value for path parameter %q", name)
		}
		if value == "" {
			return "", fmt.Errorf("path parameter %q is empty", name)
		}
		sb.WriteString(rest[:open])
		sb.WriteString(url.PathEscape(value))
		rest = rest[closeIdx+1:]
	}
}
