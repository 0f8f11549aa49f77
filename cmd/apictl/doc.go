// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// apictl is a command-line bridge to HTTP APIs: each invocation sends one
// authenticated request and streams the raw response body to standard output.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/apictl/cmd/apictl@latest
//
// # Usage
//
//	apictl --url BASE_URL [FLAGS] request METHOD PATH [-H 'Name: value'] [-q key=value] [-d DATA | --data-file FILE]
//	apictl --url BASE_URL --operations FILE [FLAGS] call OPERATION [-p name=value]
//	apictl --operations FILE operations
//	apictl [--ca-cert FILE] [--client-cert FILE --client-key FILE] identity
//
// # Flags
//
//	    --url           Base URL every request path is joined onto [required for requests]
//	    --ca-cert       PEM trusted root certificates, added to the system store
//	    --client-cert   PEM client certificate for mutual TLS (with --client-key)
//	    --client-key    PEM client private key (with --client-cert)
//	    --timeout       Whole-exchange timeout, e.g. 30s, 5m, 1h30m (default 30s)
//	-v, --verbose       Log METHOD URL and the status code to stderr
//	-o, --output        Write the response body to a file (default: stdout)
//	    --operations    Operation catalogue (JSON or YAML)
//	    --config        Settings file
//	    --log-format    Diagnostic log format: text or json
//	    --user-agent    Override the User-Agent header
//
// Every flag can also be set through an APICTL_ environment variable, for
// example APICTL_URL or APICTL_CA_CERT, or in a .env file.
//
// # Exit Status
//
// 0 when the response status is 2xx. 1 on any error, including non-2xx
// responses, whose body is still written in full first. 130 when interrupted.
//
// # Examples
//
// Fetch a resource over mutual TLS:
//
//	apictl --url https://api.example.com/v1 --ca-cert ca.pem \
//	  --client-cert client.pem --client-key client.key request GET /widgets
//
// Save a response to a file with verbose logging:
//
//	apictl --url https://api.example.com/v1 -v -o widgets.json request GET /widgets
package main
