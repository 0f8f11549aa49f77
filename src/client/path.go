// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package client

import (
	"net/url"
	"strings"
)

// JoinPath returns a copy of base with rel appended to its path, separated by
// exactly one slash. rel is taken as an already escaped path and may carry a
// query string, which is appended to any query base already has.
func JoinPath(base *url.URL, rel string) *url.URL {
	u := *base
	if base.User != nil {
		user := *base.User
		u.User = &user
	}

	relPath, relQuery, _ := strings.Cut(rel, "?")

	escaped := strings.TrimRight(base.EscapedPath(), "/") + "/" + strings.TrimLeft(relPath, "/")
	if p, err := url.PathUnescape(escaped); err == nil {
		u.Path = p
		u.RawPath = escaped
	} else {
		u.Path = escaped
		u.RawPath = ""
	}

	switch {
	case relQuery == "":
	case u.RawQuery == "":
		u.RawQuery = relQuery
	default:
		u.RawQuery += "&" + relQuery
	}

	return &u
}
