// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates embeds the markdown help templates rendered by the CLI.
//
// Each template is a Go text/template whose output has a free-form description
// followed by a "## Examples" section; the CLI splits the two into a command's
// Long and Example text.
//
// Example usage:
//
//	content, err := templates.MagicEmbed.ReadFile("cli_help.md")
//	if err != nil {
//		return fmt.Errorf("failed to read CLI help: %w", err)
//	}
package templates
