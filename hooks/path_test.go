// Copyright © 2024 The tracehook authors

package hooks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortenStripsFirstMatchingRoot(t *testing.T) {
	s := NewShortener([]string{"/home/user/", "/app/install/"})

	loc := s.Shorten("/home/user/Documents/script.py")
	assert.Equal(t, "Documents/script.py", loc.Display)
	assert.True(t, loc.Clickable)

	loc = s.Shorten("/app/install/lib/runtime.py")
	assert.Equal(t, "lib/runtime.py", loc.Display)
}

func TestShortenPriorityOrder(t *testing.T) {
	// Both roots match; the first configured root wins.
	s := NewShortener([]string{"/a/", "/a/b/"})
	loc := s.Shorten("/a/b/c.py")
	assert.Equal(t, "b/c.py", loc.Display)
}

func TestShortenNoMatch(t *testing.T) {
	s := NewShortener([]string{"/home/user/"})
	loc := s.Shorten("/usr/lib/python/json.py")
	assert.Equal(t, "/usr/lib/python/json.py", loc.Display)
	assert.True(t, loc.Clickable)
}

func TestShortenIdempotent(t *testing.T) {
	s := NewShortener([]string{"/home/user/"})
	once := s.Shorten("/home/user/script.py")
	twice := s.Shorten(once.Display)
	assert.Equal(t, once.Display, twice.Display)
}

func TestShortenSynthetic(t *testing.T) {
	s := NewShortener([]string{"/home/user/"})
	for _, marker := range []string{"<stdin>", "<string>", "<module>"} {
		loc := s.Shorten(marker)
		assert.Equal(t, marker, loc.Display)
		assert.False(t, loc.Clickable, "%s must not be clickable", marker)
		assert.Empty(t, loc.Real)
	}
}

func TestShortenResolvesSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.py")
	require.NoError(t, os.WriteFile(target, []byte("pass\n"), 0600))
	link := filepath.Join(dir, "alias.py")
	require.NoError(t, os.Symlink(target, link))

	s := NewShortener(nil)
	loc := s.Shorten(link)
	// t.TempDir may itself live behind a symlink, so resolve the
	// expectation the same way.
	want, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, want, loc.Real)
}

func TestShortenMissingFileKeepsPath(t *testing.T) {
	s := NewShortener(nil)
	loc := s.Shorten("/no/such/file.py")
	assert.Equal(t, "/no/such/file.py", loc.Display)
	assert.Equal(t, "/no/such/file.py", loc.Real)
}

func TestDetectRoots(t *testing.T) {
	roots := DetectRoots(DefaultAppName)
	require.NotEmpty(t, roots)
	sep := string(os.PathSeparator)
	for _, root := range roots {
		assert.True(t, strings.HasSuffix(root, sep), "root %q must end with separator", root)
	}
}
