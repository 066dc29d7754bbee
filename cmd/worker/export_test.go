package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadGraphFormatDetection(t *testing.T) {
	t.Run("pair format", func(t *testing.T) {
		g := readGraph(writeTempFile(t, "alice bob\nbob carol\n"))

		assert.Equal(t, 3, g.PersonCount())
		assert.True(t, g.HasFriendship("alice", "bob"))
	})

	t.Run("colon list format", func(t *testing.T) {
		g := readGraph(writeTempFile(t, "alice: bob, carol\n"))

		assert.Equal(t, 3, g.PersonCount())
		assert.True(t, g.HasFriendship("alice", "carol"))
	})

	t.Run("comments before the first data line are skipped", func(t *testing.T) {
		g := readGraph(writeTempFile(t, "# exported: adjacency\n\nalice bob\n"))

		assert.Equal(t, 2, g.PersonCount())
	})

	t.Run("a colon in a later pair line does not flip the format", func(t *testing.T) {
		g := readGraph(writeTempFile(t, "alice bob\nhost:7687 carol\n"))

		assert.Equal(t, 4, g.PersonCount())
		assert.True(t, g.HasFriendship("host:7687", "carol"))
	})
}

func TestFirstDataLineHasColon(t *testing.T) {
	assert.True(t, firstDataLineHasColon("alice: bob\n"))
	assert.False(t, firstDataLineHasColon("alice bob\n"))
	assert.False(t, firstDataLineHasColon("# note: with colon\nalice bob\n"))
	assert.False(t, firstDataLineHasColon(""))
}
