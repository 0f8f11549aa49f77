// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapFS adapts fstest.MapFS to templates.EmbedFS.
type mapFS struct{ fstest.MapFS }

func (m mapFS) ReadFile(name string) ([]byte, error)       { return m.MapFS.ReadFile(name) }
func (m mapFS) ReadDir(name string) ([]fs.DirEntry, error) { return m.MapFS.ReadDir(name) }

func TestSplitExamples(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantLong     string
		wantExamples string
		wantErr      bool
	}{
		{
			name:         "unix line endings",
			input:        "Intro text.\n\n## Examples\n\n  apictl request GET /\n",
			wantLong:     "Intro text.",
			wantExamples: "  apictl request GET /",
		},
		{
			name:         "windows line endings",
			input:        "Intro.\r\n## Examples\r\n  apictl identity\r\n",
			wantLong:     "Intro.",
			wantExamples: "  apictl identity",
		},
		{
			name:         "marker at start",
			input:        "## Examples\n  apictl operations",
			wantLong:     "",
			wantExamples: "  apictl operations",
		},
		{
			name:         "marker at end",
			input:        "Only text\n## Examples",
			wantLong:     "Only text",
			wantExamples: "",
		},
		{
			name:    "missing marker",
			input:   "No examples here",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			longDesc, examples, err := splitExamples(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLong, longDesc)
			assert.Equal(t, tt.wantExamples, examples)
		})
	}
}

func TestRenderHelp(t *testing.T) {
	fsys := mapFS{fstest.MapFS{
		"ok.md":     {Data: []byte("Use {{.ExeName}} with {{.URLFlag}}.\n## Examples\n  {{.ExeName}} {{.ParamFlag}} id=1\n")},
		"broken.md": {Data: []byte("{{.ExeName")},
		"bad.md":    {Data: []byte("{{.Missing}}\n## Examples\n")},
	}}

	longDesc, examples, err := renderHelp(fsys, "ok.md", newHelpData("apictl"))
	require.NoError(t, err)
	assert.Equal(t, "Use apictl with --url.", longDesc)
	assert.Equal(t, "  apictl --param id=1", examples)

	_, _, err = renderHelp(fsys, "missing.md", newHelpData("apictl"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, _, err = renderHelp(fsys, "broken.md", newHelpData("apictl"))
	assert.ErrorContains(t, err, "failed to parse")

	_, _, err = renderHelp(fsys, "bad.md", newHelpData("apictl"))
	assert.ErrorContains(t, err, "failed to execute")
}
