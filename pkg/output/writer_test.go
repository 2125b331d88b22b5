// Test Type: Integration Test
// Description: Tests for writing envelopes to disk through synthfs

package output_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/actionq/pkg/actions"
	"github.com/arthur-debert/actionq/pkg/errors"
	"github.com/arthur-debert/actionq/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEnvelope(t *testing.T) actions.Envelope {
	t.Helper()
	env, err := actions.NewQueue().
		Add(actions.Toast{Kind: "info", Title: "Hi", TextBody: "there"}).
		Add(actions.Link{URL: "https://example.com"}).
		Serialize()
	require.NoError(t, err)
	return env
}

func TestWriter_WriteEnvelope(t *testing.T) {
	env := sampleEnvelope(t)
	target := filepath.Join(t.TempDir(), "out", "chain.json")

	ops, err := output.NewWriter(false).WriteEnvelope(context.Background(), target, env)
	require.NoError(t, err)

	kinds := make([]string, len(ops))
	for i, op := range ops {
		kinds[i] = op.Kind
	}
	assert.Equal(t, []string{output.OpCreateDir, output.OpWriteFile}, kinds)

	data, err := os.ReadFile(target)
	require.NoError(t, err)

	decoded, err := actions.DecodeEnvelope(data)
	require.NoError(t, err)
	assert.Equal(t, env, decoded)
}

func TestWriter_ExistingDirectoryIsNotRecreated(t *testing.T) {
	target := filepath.Join(t.TempDir(), "chain.json")

	ops, err := output.NewWriter(false).Write(context.Background(), target, []byte("{}\n"))
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, output.OpWriteFile, ops[0].Kind)
	assert.Equal(t, 3, ops[0].Size)
}

func TestWriter_DryRun(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "chain.json")

	ops, err := output.NewWriter(true).WriteEnvelope(context.Background(), target, sampleEnvelope(t))
	require.NoError(t, err)
	assert.Len(t, ops, 2)

	_, statErr := os.Stat(filepath.Dir(target))
	assert.True(t, os.IsNotExist(statErr), "dry run must not touch the filesystem")
}

func TestWriter_ExistingTarget(t *testing.T) {
	t.Run("refused_without_force", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "chain.json")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0644))

		_, err := output.NewWriter(false).Write(context.Background(), target, []byte("new"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))

		data, readErr := os.ReadFile(target)
		require.NoError(t, readErr)
		assert.Equal(t, "old", string(data))
	})

	t.Run("replaced_with_force", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "chain.json")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0644))

		ops, err := output.NewWriter(false).EnableForce(true).Write(context.Background(), target, []byte("new"))
		require.NoError(t, err)
		require.Len(t, ops, 2)
		assert.Equal(t, output.OpRemove, ops[0].Kind)

		data, readErr := os.ReadFile(target)
		require.NoError(t, readErr)
		assert.Equal(t, "new", string(data))
	})

	t.Run("identical_content_is_unchanged", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "chain.json")
		require.NoError(t, os.WriteFile(target, []byte("same"), 0644))

		ops, err := output.NewWriter(false).Write(context.Background(), target, []byte("same"))
		require.NoError(t, err)
		require.Len(t, ops, 1)
		assert.Equal(t, output.OpUnchanged, ops[0].Kind)
	})

	t.Run("directory_target", func(t *testing.T) {
		target := t.TempDir()

		_, err := output.NewWriter(false).EnableForce(true).Write(context.Background(), target, []byte("x"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	})
}

func TestWriter_WithModes(t *testing.T) {
	target := filepath.Join(t.TempDir(), "chain.json")

	ops, err := output.NewWriter(true).WithModes(0600, 0).Plan(target, []byte("x"))
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, os.FileMode(0600), ops[0].Mode)
	assert.Contains(t, ops[0].String(), "write_file")
}
