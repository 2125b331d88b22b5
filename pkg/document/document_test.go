// Test Type: Unit Test
// Description: Tests for parsing chain documents in every supported format

package document_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/actionq/pkg/actions"
	"github.com/arthur-debert/actionq/pkg/document"
	"github.com/arthur-debert/actionq/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"chain.yaml", document.FormatYAML},
		{"chain.YML", document.FormatYAML},
		{"dir/chain.toml", document.FormatTOML},
		{"chain.json", document.FormatJSON},
		{"chain.xml", document.FormatXML},
		{"chain.actions", ""},
		{"chain", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, document.FormatFromPath(tt.path))
		})
	}
}

func TestLoad_AllFormatsBuildTheSameChain(t *testing.T) {
	reference, err := document.Load(fixture("chain.yaml"))
	require.NoError(t, err)
	refQueue, err := document.Build(reference)
	require.NoError(t, err)
	want := refQueue.MustSerialize()

	assert.Equal(t,
		[]string{"toast", "dialog", "navigation", "notification"},
		refQueue.Queue().Types())

	for _, name := range []string{"chain.toml", "chain.json", "chain.xml"} {
		t.Run(name, func(t *testing.T) {
			doc, err := document.Load(fixture(name))
			require.NoError(t, err)

			q, err := document.Build(doc)
			require.NoError(t, err)

			assert.JSONEq(t, want.Action, q.MustSerialize().Action)
		})
	}
}

func TestLoad_Fixture(t *testing.T) {
	doc, err := document.Load(fixture("chain.yaml"))
	require.NoError(t, err)
	require.Len(t, doc.Actions, 4)

	dialog := doc.Actions[1]
	assert.Equal(t, actions.TypeDialog, dialog.Type)
	require.Len(t, dialog.Options, 2)
	assert.Equal(t, "Open", dialog.Options[0].Text)
	require.Len(t, dialog.Options[0].Actions, 1)
	assert.Equal(t, "https://example.com", dialog.Options[0].Actions[0].URL)
	assert.Empty(t, dialog.Options[1].Actions)

	assert.Equal(t, map[string]interface{}{"id": "42"}, doc.Actions[2].Params)
}

func TestLoadWithFormat_Fallback(t *testing.T) {
	doc, err := document.LoadWithFormat(fixture("chain.actions"), document.FormatYAML)
	require.NoError(t, err)
	require.Len(t, doc.Actions, 1)
	assert.Equal(t, actions.TypeLink, doc.Actions[0].Type)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	tests := []struct {
		name     string
		path     string
		wantCode errors.ErrorCode
	}{
		{"missing_file", filepath.Join(dir, "missing.yaml"), errors.ErrDocumentLoad},
		{"bad_yaml", write("bad.yaml", "actions: [\n"), errors.ErrDocumentParse},
		{"unknown_yaml_field", write("field.yaml", "actions:\n  - type: link\n    href: x\n"), errors.ErrDocumentParse},
		{"bad_toml", write("bad.toml", "[[actions]\n"), errors.ErrDocumentParse},
		{"unknown_json_field", write("field.json", `{"actions":[{"type":"link","href":"x"}]}`), errors.ErrDocumentParse},
		{"bad_xml", write("bad.xml", "<chain><toast></chain>"), errors.ErrDocumentParse},
		{"wrong_xml_root", write("root.xml", "<actions/>"), errors.ErrDocumentParse},
		{"dialog_with_stray_child", write("stray.xml", "<chain><dialog><link url=\"x\"/></dialog></chain>"), errors.ErrDocumentParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := document.Load(tt.path)
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
			assert.Equal(t, tt.path, errors.GetErrorDetails(err)["path"])
		})
	}
}

func TestParse_EmptyYAML(t *testing.T) {
	doc, err := document.Parse([]byte(""), document.FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, doc.Actions)
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := document.Parse([]byte("x"), "ini")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestParse_XMLParams(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		doc, err := document.Parse([]byte(`<chain><navigation name="n" screen="s"><param>7</param></navigation></chain>`), document.FormatXML)
		require.NoError(t, err)
		assert.Equal(t, "7", doc.Actions[0].Params)
	})

	t.Run("none", func(t *testing.T) {
		doc, err := document.Parse([]byte(`<chain><navigation name="n" screen="s"/></chain>`), document.FormatXML)
		require.NoError(t, err)
		assert.Nil(t, doc.Actions[0].Params)
	})

	t.Run("missing_key", func(t *testing.T) {
		_, err := document.Parse([]byte(`<chain><navigation><param>1</param><param>2</param></navigation></chain>`), document.FormatXML)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDocumentParse))
	})
}
