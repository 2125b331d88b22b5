package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	assert.Equal(t, "dev (commit unknown, built unknown)", Info())

	Version, Commit, Date = "1.2.0", "abc123", "2025-01-01"
	t.Cleanup(func() { Version, Commit, Date = "dev", "unknown", "unknown" })

	assert.Equal(t, "1.2.0 (commit abc123, built 2025-01-01)", Info())
}
