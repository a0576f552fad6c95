package audit

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionOperators are the range-operator characters stripped from the
// front of a version string before semver parsing. Only the leading run is
// removed; everything after the first non-operator character stays intact.
const versionOperators = "^~>=<"

// CleanVersion strips a leading run of range-operator characters, so
// "^1.2.3" becomes "1.2.3" and ">=2.0.0" becomes "2.0.0". A string with no
// leading operator is returned unchanged.
func CleanVersion(v string) string {
	return strings.TrimLeft(v, versionOperators)
}

// IsStale reports whether installed sits at or below the requested
// threshold. An empty requested version means no threshold was set and the
// result is always false. Both sides are cleaned before parsing; if either
// fails to parse as a semantic version an error is returned and staleness
// is false, leaving the caller to decide how loudly to complain.
func IsStale(installed, requested string) (bool, error) {
	if requested == "" {
		return false, nil
	}
	iv, err := semver.NewVersion(CleanVersion(installed))
	if err != nil {
		return false, fmt.Errorf("installed version %q: %w", installed, err)
	}
	rv, err := semver.NewVersion(CleanVersion(requested))
	if err != nil {
		return false, fmt.Errorf("requested version %q: %w", requested, err)
	}
	return iv.Compare(rv) <= 0, nil
}
