// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"io"
	"os"
	"strings"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
	"github.com/H0llyW00dzZ/apictl/src/endpoint"
	"github.com/spf13/pflag"
)

// requestInput collects the flags shared by request and call.
type requestInput struct {
	headers     []string
	pairs       []string
	data        string
	dataFile    string
	contentType string
}

// register adds the shared flags to fs. pairFlag names the repeatable
// key=value flag: --query for request, --param for call.
func (in *requestInput) register(fs *pflag.FlagSet, pairFlag, pairShort, pairUsage string) {
	fs.StringArrayVarP(&in.headers, flagHeader, "H", nil, `extra request header "Name: value" (repeatable)`)
	fs.StringArrayVarP(&in.pairs, pairFlag, pairShort, nil, pairUsage)
	fs.StringVarP(&in.data, flagData, "d", "", "request body")
	fs.StringVar(&in.dataFile, flagDataFile, "", `read the request body from FILE ("-" for stdin)`)
	fs.StringVar(&in.contentType, flagContentType, "", "Content-Type of the body (default: application/json)")
}

// call assembles an endpoint.Call from the parsed flags.
func (in *requestInput) call(fs *pflag.FlagSet, stdin io.Reader) (endpoint.Call, error) {
	headers, err := parseHeaders(in.headers)
	if err != nil {
		return endpoint.Call{}, err
	}
	pairs, err := parsePairs(in.pairs)
	if err != nil {
		return endpoint.Call{}, err
	}
	body, err := in.body(fs, stdin)
	if err != nil {
		return endpoint.Call{}, err
	}
	return endpoint.Call{
		Params:      pairs,
		Headers:     headers,
		Body:        body,
		ContentType: in.contentType,
	}, nil
}

// body returns nil when neither --data nor --data-file was given, so an
// explicitly empty --data still sends an empty body.
func (in *requestInput) body(fs *pflag.FlagSet, stdin io.Reader) ([]byte, error) {
	switch {
	case fs.Changed(flagData):
		return []byte(in.data), nil
	case in.dataFile == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, apierr.New(apierr.KindIO, "load stdin", err)
		}
		return b, nil
	case in.dataFile != "":
		b, err := os.ReadFile(in.dataFile)
		if err != nil {
			return nil, apierr.New(apierr.KindIO, "load "+in.dataFile, err)
		}
		return b, nil
	default:
		return nil, nil
	}
}

// parseHeaders parses "Name: value" pairs. A repeated name keeps the last value.
func parseHeaders(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(raw))
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, apierr.Errorf(apierr.KindUsage, "--"+flagHeader, "want \"Name: value\", got %q", h)
		}
		out[name] = strings.TrimSpace(value)
	}
	return out, nil
}

// parsePairs parses "key=value" pairs. A repeated key keeps the last value.
func parsePairs(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(raw))
	for _, p := range raw {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, apierr.Errorf(apierr.KindUsage, "parameter", "want key=value, got %q", p)
		}
		out[key] = value
	}
	return out, nil
}
