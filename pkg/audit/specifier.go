package audit

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Entry is one watch-list line: a package name and an optional version
// threshold. An empty Version means the package is watched without a
// threshold and can never be flagged stale.
type Entry struct {
	Name    string
	Version string
}

// ParseSpecifier parses a single watch-list line. It returns false for
// blank lines and for lines it cannot make sense of.
//
// The "@" character is overloaded: it prefixes a scope ("@babel/core") and
// separates a name from its version ("lodash@4.17.21"). Scoped lines are
// split literally on "@": two segments mean a bare scoped name, three mean
// a scoped name plus version, anything else is rejected. Unscoped lines
// split at the last "@" so the version is always the trailing segment.
func ParseSpecifier(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Entry{}, false
	}

	if strings.HasPrefix(line, "@") {
		// The leading "@" yields an empty first segment.
		parts := strings.Split(line, "@")
		switch len(parts) {
		case 2:
			return Entry{Name: line}, true
		case 3:
			return Entry{Name: "@" + parts[1], Version: parts[2]}, true
		default:
			return Entry{}, false
		}
	}

	if i := strings.LastIndex(line, "@"); i >= 0 {
		return Entry{Name: line[:i], Version: line[i+1:]}, true
	}
	return Entry{Name: line}, true
}

// loadWatchlist reads the watch-list file, one specifier per line, and
// keeps the file's ordering. A missing or unreadable file is fatal: there
// is no audit without a watch-list.
func (a *Auditor) loadWatchlist(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read watch-list %s: %w", path, err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		entry, ok := ParseSpecifier(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				a.Log.Debugf("skipping unparseable specifier on line %d: %q", lineNum, line)
			}
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read watch-list %s: %w", path, err)
	}
	return entries, nil
}
