// Test Type: Unit Test
// Description: Tests for building queues from documents and converting chains back

package document_test

import (
	"testing"

	"github.com/arthur-debert/actionq/pkg/actions"
	"github.com/arthur-debert/actionq/pkg/document"
	"github.com/arthur-debert/actionq/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	doc := &document.Document{Actions: []document.Step{
		{Type: "toast", Kind: "success", Title: "Saved", TextBody: "ok"},
		{Type: "link", URL: "https://example.com"},
	}}

	q, err := document.Build(doc)
	require.NoError(t, err)

	root := q.Queue()
	require.NotNil(t, root)
	assert.Equal(t, actions.TypeToast, root.Type)
	assert.Equal(t, actions.Fields{"type": "success", "title": "Saved", "textBody": "ok"}, root.Data)
	require.NotNil(t, root.Action)
	assert.Equal(t, actions.Fields{"url": "https://example.com"}, root.Action.Data)
	assert.Nil(t, root.Action.Action)
}

func TestBuild_Empty(t *testing.T) {
	for name, doc := range map[string]*document.Document{
		"nil":      nil,
		"no_steps": {},
	} {
		t.Run(name, func(t *testing.T) {
			q, err := document.Build(doc)
			require.NoError(t, err)
			assert.True(t, q.IsEmpty())
			assert.Equal(t, "null", q.MustSerialize().Action)
		})
	}
}

func TestBuild_DialogOptionsAreIndependentChains(t *testing.T) {
	doc := &document.Document{Actions: []document.Step{
		{
			Type:  "dialog",
			Title: "Pick",
			Options: []document.Option{
				{Text: "A", Actions: []document.Step{
					{Type: "link", URL: "a1"},
					{Type: "link", URL: "a2"},
				}},
				{Text: "B"},
			},
		},
		{Type: "notification", Title: "after", Body: "dialog"},
	}}

	q, err := document.Build(doc)
	require.NoError(t, err)

	root := q.Queue()
	assert.Equal(t, []string{"dialog", "notification"}, root.Types())

	opts := root.Options()
	require.Len(t, opts, 2)
	assert.Equal(t, []string{"link", "link"}, opts[0].Action.Types())
	assert.Nil(t, opts[1].Action)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name     string
		fixture  string
		wantCode errors.ErrorCode
		wantStep string
	}{
		{"unknown_type", "unknown.yaml", errors.ErrUnknownAction, "actions[1]"},
		{"empty_dialog", "empty-dialog.yaml", errors.ErrInvalidConstruction, "actions[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := document.Load(fixture(tt.fixture))
			require.NoError(t, err)

			q, err := document.Build(doc)
			require.Error(t, err)
			assert.Nil(t, q)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
			assert.Equal(t, tt.wantStep, errors.GetErrorDetails(err)["step"])
		})
	}
}

func TestBuild_NestedErrorPath(t *testing.T) {
	doc := &document.Document{Actions: []document.Step{
		{Type: "link", URL: "x"},
		{Type: "dialog", Options: []document.Option{
			{Text: "ok"},
			{Text: "bad", Actions: []document.Step{
				{Type: "link", URL: "y"},
				{Type: "dialog"},
			}},
		}},
	}}

	_, err := document.Build(doc)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidConstruction))
	assert.Equal(t, "actions[1].options[1].actions[1]", errors.GetErrorDetails(err)["step"])
	assert.Contains(t, err.Error(), actions.MsgEmptyOptions)
}

func TestFromNode_RoundTrip(t *testing.T) {
	original, err := document.Load(fixture("chain.yaml"))
	require.NoError(t, err)
	q, err := document.Build(original)
	require.NoError(t, err)
	env := q.MustSerialize()

	// decode the wire form, convert back and rebuild
	root, err := env.Chain()
	require.NoError(t, err)
	doc := document.FromNode(root)

	for _, format := range document.Formats {
		t.Run(format, func(t *testing.T) {
			encoded, err := document.Marshal(doc, format)
			require.NoError(t, err)

			parsed, err := document.Parse(encoded, format)
			require.NoError(t, err)

			rebuilt, err := document.Build(parsed)
			require.NoError(t, err)
			assert.JSONEq(t, env.Action, rebuilt.MustSerialize().Action)
		})
	}
}

func TestFromNode_NumbersBecomePlainValues(t *testing.T) {
	root, err := actions.ParseEnvelope([]byte(`{"action":"{\"type\":\"navigation\",\"data\":{\"name\":\"n\",\"screen\":\"s\",\"params\":{\"id\":42,\"ratio\":0.5}}}"}`))
	require.NoError(t, err)

	doc := document.FromNode(root)
	require.Len(t, doc.Actions, 1)
	assert.Equal(t, map[string]interface{}{"id": int64(42), "ratio": 0.5}, doc.Actions[0].Params)
}

func TestFromNode_Nil(t *testing.T) {
	doc := document.FromNode(nil)
	assert.Empty(t, doc.Actions)
}
