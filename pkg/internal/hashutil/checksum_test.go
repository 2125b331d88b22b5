// Test Type: Unit Test
// Description: Tests for content and file checksums

package hashutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	sum := Checksum([]byte(`{"action":"null"}`))
	assert.Contains(t, sum, "sha256:")
	assert.Len(t, sum, 71) // "sha256:" + 64 hex chars

	assert.Equal(t, sum, Checksum([]byte(`{"action":"null"}`)))
	assert.NotEqual(t, sum, Checksum([]byte(`{"action":"[]"}`)))
}

func TestCalculateFileChecksum(t *testing.T) {
	content := []byte("{\"action\":\"null\"}\n")
	path := filepath.Join(t.TempDir(), "envelope.json")
	require.NoError(t, os.WriteFile(path, content, 0644))

	sum, err := CalculateFileChecksum(path)
	require.NoError(t, err)
	assert.Equal(t, Checksum(content), sum)

	_, err = CalculateFileChecksum(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestSameContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "envelope.json")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	assert.True(t, SameContent(path, []byte("a")))
	assert.False(t, SameContent(path, []byte("b")))
	assert.False(t, SameContent(filepath.Join(t.TempDir(), "missing"), []byte("a")))
}
