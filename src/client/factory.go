// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package client

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/H0llyW00dzZ/apictl/src/apierr"
	"github.com/H0llyW00dzZ/apictl/src/internal/x509/identity"
	"github.com/H0llyW00dzZ/apictl/src/logger"
	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds a whole exchange when no timeout is configured.
const DefaultTimeout = 30 * time.Second

var (
	// ErrEmptyRoots is returned when trusted roots are configured but hold no certificates.
	ErrEmptyRoots = errors.New("client: trusted root pool is empty")
	// ErrEmptyClientCertificate is returned when a client identity carries no certificate.
	ErrEmptyClientCertificate = errors.New("client: client identity has no certificate")
	// ErrNegativeTimeout is returned for timeouts below zero.
	ErrNegativeTimeout = errors.New("client: timeout must not be negative")
)

// Options configures [New].
type Options struct {
	// Identity carries trusted roots and an optional client certificate.
	// Nil means system roots and no client authentication.
	Identity *identity.Identity
	// Timeout is a Go duration string such as "30s" or "1h30m".
	// Empty selects DefaultTimeout; "0" disables the deadline.
	Timeout string
	// BaseURL is the absolute http or https URL every relative path is joined onto.
	BaseURL string
	// Verbose logs "METHOD URL" before and the status code after each exchange.
	Verbose bool
	// UserAgent overrides the User-Agent header.
	UserAgent string
	// Logger receives verbose audit lines and transport diagnostics.
	Logger logger.Logger
}

// Client is the production [API] implementation. It is immutable once built
// and may serve several sequential requests.
type Client struct {
	rc      *resty.Client
	baseURL *url.URL
	timeout time.Duration
	verbose bool
	log     logger.Logger
}

var _ API = (*Client)(nil)

// New builds a [Client] from opts without performing any network I/O.
//
// The steps run in a fixed order and the first failure is returned:
// transport clone, trusted roots, client certificate, timeout
// (DurationParseError), base URL (UrlParseError) and finally the resty
// client (ClientBuildError).
//
// Parameters:
//   - opts: Client options
//
// Returns:
//   - *Client: Configured client
//   - error: Typed [apierr.Error] describing the failed step
func New(opts Options) (*Client, error) {
	transport := cloneDefaultTransport()
	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
	if transport.TLSClientConfig != nil {
		tlsConfig = transport.TLSClientConfig.Clone()
		if tlsConfig.MinVersion == 0 {
			tlsConfig.MinVersion = tls.VersionTLS12
		}
	}

	var buildErr error
	if id := opts.Identity; id != nil {
		if id.Roots != nil {
			if len(id.Authorities) == 0 && id.Roots.Equal(x509.NewCertPool()) {
				buildErr = ErrEmptyRoots
			}
			tlsConfig.RootCAs = id.Roots
		}
		if id.Certificate != nil {
			if len(id.Certificate.Certificate) == 0 {
				buildErr = errors.Join(buildErr, ErrEmptyClientCertificate)
			} else {
				tlsConfig.Certificates = []tls.Certificate{*id.Certificate}
			}
		}
	}

	timeout, err := parseTimeout(opts.Timeout)
	if err != nil {
		return nil, apierr.New(apierr.KindDurationParse, "timeout "+opts.Timeout, err)
	}

	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, apierr.New(apierr.KindURLParse, "url "+opts.BaseURL, err)
	}

	if buildErr != nil {
		return nil, apierr.New(apierr.KindClientBuild, "client", buildErr)
	}

	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}

	transport.TLSClientConfig = tlsConfig
	rc := resty.NewWithClient(&http.Client{Transport: transport}).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetAllowGetMethodPayload(true).
		SetLogger(restyLogger{log: log})
	if opts.UserAgent != "" {
		rc.SetHeader("User-Agent", opts.UserAgent)
	}

	return &Client{
		rc:      rc,
		baseURL: base,
		timeout: timeout,
		verbose: opts.Verbose,
		log:     log,
	}, nil
}

// BaseURL returns a copy of the base URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// Timeout returns the configured whole-exchange deadline.
func (c *Client) Timeout() time.Duration { return c.timeout }

// TLSConfig returns the TLS configuration the transport dials with.
func (c *Client) TLSConfig() *tls.Config {
	if t, ok := c.rc.GetClient().Transport.(*http.Transport); ok {
		return t.TLSClientConfig
	}
	return nil
}

// cloneDefaultTransport returns an independent copy of http.DefaultTransport,
// or a fresh transport when the default has been replaced by another type.
func cloneDefaultTransport() *http.Transport {
	if t, ok := http.DefaultTransport.(*http.Transport); ok {
		return t.Clone()
	}
	return &http.Transport{Proxy: http.ProxyFromEnvironment}
}

func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, ErrNegativeTimeout
	}
	return d, nil
}

func parseBaseURL(s string) (*url.URL, error) {
	if s == "" {
		return nil, errors.New("base URL is empty")
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q, want http or https", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("base URL has no host")
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u, nil
}

func discardLogger() logger.Logger {
	l := logger.NewCLILogger()
	l.SetOutput(io.Discard)
	return l
}
