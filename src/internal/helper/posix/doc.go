// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//
// The CLI uses the name for the cobra root command and for the examples in
// its rendered help text:
//
//	exeName := posix.GetExecutableName()
//	rootCmd := &cobra.Command{
//	    Use:   exeName,
//	    Short: "Send one authenticated request to an HTTP API",
//	}
//
// Cross-Platform Behavior:
//
//   - Linux/macOS: "/usr/local/bin/apictl" → "apictl"
//   - Windows: "C:\bin\apictl.exe" → "apictl"
//   - Fallback: Empty args → "apictl"
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
