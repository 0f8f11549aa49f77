// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies the stage and nature of a failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindIO
	KindCertParse
	KindKeyParse
	KindBundle
	KindClientBuild
	KindDurationParse
	KindURLParse
	KindRequestBuild
	KindTransport
	KindRead
	KindWrite
	KindNonSuccessStatus
	KindUsage
	KindResolve
)

var kindNames = map[Kind]string{
	KindUnknown:          "UnknownError",
	KindIO:               "IoError",
	KindCertParse:        "CertParseError",
	KindKeyParse:         "KeyParseError",
	KindBundle:           "BundleError",
	KindClientBuild:      "ClientBuildError",
	KindDurationParse:    "DurationParseError",
	KindURLParse:         "UrlParseError",
	KindRequestBuild:     "RequestBuildError",
	KindTransport:        "TransportError",
	KindRead:             "ReadError",
	KindWrite:            "WriteError",
	KindNonSuccessStatus: "NonSuccessStatus",
	KindUsage:            "UsageError",
	KindResolve:          "ResolveError",
}

// String returns the taxonomy name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a failure tagged with its [Kind].
//
// Op names the operation that failed (for example "load ca-cert" or
// "GET https://api.example.com/v1/widgets"). Status is only set for
// [KindNonSuccessStatus].
type Error struct {
	Kind   Kind
	Op     string
	Err    error
	Status int
}

// Error renders the failure on a single line.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Kind == KindNonSuccessStatus && e.Status != 0 {
		msg += fmt.Sprintf(": %d %s", e.Status, http.StatusText(e.Status))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
// A target with an empty Op and nil Err matches on kind alone, which is how
// the exported sentinels are meant to be used.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	IO               = &Error{Kind: KindIO}
	CertParse        = &Error{Kind: KindCertParse}
	KeyParse         = &Error{Kind: KindKeyParse}
	Bundle           = &Error{Kind: KindBundle}
	ClientBuild      = &Error{Kind: KindClientBuild}
	DurationParse    = &Error{Kind: KindDurationParse}
	URLParse         = &Error{Kind: KindURLParse}
	RequestBuild     = &Error{Kind: KindRequestBuild}
	Transport        = &Error{Kind: KindTransport}
	Read             = &Error{Kind: KindRead}
	Write            = &Error{Kind: KindWrite}
	NonSuccessStatus = &Error{Kind: KindNonSuccessStatus}
	Usage            = &Error{Kind: KindUsage}
	Resolve          = &Error{Kind: KindResolve}
)

// New returns an *Error of the given kind wrapping err.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf returns an *Error of the given kind with a formatted cause.
func Errorf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Status returns a [KindNonSuccessStatus] error for the given HTTP status.
func Status(op string, code int) *Error {
	return &Error{Kind: KindNonSuccessStatus, Op: op, Status: code}
}

// KindOf returns the kind of the first *Error in err's chain, or
// [KindUnknown] when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
