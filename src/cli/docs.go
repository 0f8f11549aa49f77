// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the Cobra-based command-line interface of apictl.
//
// The root command resolves settings (flags, APICTL_* environment, .env file
// and an optional settings file) and dispatches to four subcommands:
//
//   - request METHOD PATH sends a request built directly from its arguments.
//   - call OPERATION runs a named operation from an operation catalogue.
//   - operations lists the catalogue as a markdown table.
//   - identity prints the loaded TLS certificates without any network I/O.
//
// Response bodies go to standard output (or --output); diagnostics and the
// verbose audit trail go to the logger, which writes to standard error.
// Every failure is returned as an [apierr.Error] so the caller can print it
// on a single line.
package cli
