// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/H0llyW00dzZ/apictl/src/cli/templates"
)

// examplesMarker separates the Long description from the Examples section.
const examplesMarker = "## Examples"

// helpData is the data passed to the embedded help templates.
type helpData struct {
	ExeName        string
	URLFlag        string
	CACertFlag     string
	ClientCertFlag string
	ClientKeyFlag  string
	OutputFlag     string
	ConfigFlag     string
	OperationsFlag string
	ParamFlag      string
}

func newHelpData(exeName string) helpData {
	return helpData{
		ExeName:        exeName,
		URLFlag:        "--" + flagURL,
		CACertFlag:     "--" + flagCACert,
		ClientCertFlag: "--" + flagClientCert,
		ClientKeyFlag:  "--" + flagClientKey,
		OutputFlag:     "--" + flagOutput,
		ConfigFlag:     "--" + flagConfig,
		OperationsFlag: "--" + flagOperations,
		ParamFlag:      "--" + flagParam,
	}
}

// renderHelp loads the named template from fsys, executes it with data and
// splits the result into Long and Example text.
func renderHelp(fsys templates.EmbedFS, name string, data helpData) (longDesc, examples string, err error) {
	raw, err := fsys.ReadFile(name)
	if err != nil {
		return "", "", fmt.Errorf("failed to load help template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse help template %s: %w", name, err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", "", fmt.Errorf("failed to execute help template %s: %w", name, err)
	}

	return splitExamples(result.String())
}

// splitExamples returns the text before and after the "## Examples" line,
// each trimmed of surrounding whitespace.
func splitExamples(rendered string) (longDesc, examples string, err error) {
	markerIndex := strings.Index(rendered, examplesMarker)
	if markerIndex == -1 {
		return "", "", fmt.Errorf("help template has invalid format - missing %q section", examplesMarker)
	}

	lineStart := strings.LastIndex(rendered[:markerIndex], "\n") + 1

	lineEnd := strings.Index(rendered[markerIndex:], "\n")
	if lineEnd == -1 {
		lineEnd = len(rendered)
	} else {
		lineEnd += markerIndex
	}

	longDesc = strings.TrimSpace(rendered[:lineStart])
	// Examples keep their leading indentation; only blank lines are trimmed.
	examples = strings.TrimRight(strings.TrimLeft(rendered[lineEnd:], "\r\n"), " \t\r\n")
	return longDesc, examples, nil
}
