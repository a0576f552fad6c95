package audit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecifier(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Entry
		ok       bool
	}{
		{"bare name", "lodash", Entry{Name: "lodash"}, true},
		{"name with version", "lodash@4.17.21", Entry{Name: "lodash", Version: "4.17.21"}, true},
		{"scoped name", "@babel/core", Entry{Name: "@babel/core"}, true},
		{"scoped with version", "@babel/core@7.24.0", Entry{Name: "@babel/core", Version: "7.24.0"}, true},
		{"surrounding whitespace", "  express@4.18.2  ", Entry{Name: "express", Version: "4.18.2"}, true},
		{"version keeps operator", "react@^18.0.0", Entry{Name: "react", Version: "^18.0.0"}, true},
		{"unscoped splits at last at", "a@b@c", Entry{Name: "a@b", Version: "c"}, true},
		{"bare scope fragment", "@only", Entry{Name: "@only"}, true},
		{"scoped with too many segments", "@a/b@1.0.0@x", Entry{}, false},
		{"blank", "", Entry{}, false},
		{"whitespace only", "   ", Entry{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := ParseSpecifier(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, entry)
		})
	}
}

func TestLoadWatchlist(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "watchlist-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	watchlist := `lodash@4.17.21

@babel/core
@a/b@1.0.0@x
express
`
	path := filepath.Join(tmpDir, "watchlist.txt")
	err = os.WriteFile(path, []byte(watchlist), 0644)
	require.NoError(t, err)

	a := New(nil)
	entries, err := a.loadWatchlist(path)
	require.NoError(t, err)

	// Blank and unparseable lines drop out, order is preserved.
	assert.Equal(t, []Entry{
		{Name: "lodash", Version: "4.17.21"},
		{Name: "@babel/core"},
		{Name: "express"},
	}, entries)
}

func TestLoadWatchlistMissing(t *testing.T) {
	a := New(nil)
	_, err := a.loadWatchlist(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch-list")
}
