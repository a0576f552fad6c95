package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	lockfileName = "package-lock.json"

	// installDirMarker separates a flattened lockfile path from the
	// package name it resolves: "node_modules/@babel/core" names
	// "@babel/core".
	installDirMarker = "node_modules/"
)

// lockfileJSON keeps the two schema generations of package-lock.json as
// raw sections so each can be decoded and validated on its own.
// lockfileVersion 1 nests dependencies recursively under "dependencies";
// versions 2 and 3 flatten them into install paths under "packages". Both
// sections can coexist in one file.
type lockfileJSON struct {
	LockfileVersion int             `json:"lockfileVersion"`
	Dependencies    json.RawMessage `json:"dependencies"`
	Packages        json.RawMessage `json:"packages"`
}

// dependencyNode is one entry of the nested schema.
type dependencyNode struct {
	Version      string                    `json:"version"`
	Dependencies map[string]dependencyNode `json:"dependencies"`
}

// packageEntry is one entry of the flattened schema.
type packageEntry struct {
	Version string `json:"version"`
}

// collectLockfile folds the project lockfile into versions, overwriting
// manifest-declared ranges with the versions npm actually resolved. Every
// failure here is recoverable: a missing lockfile is reported and skipped,
// a malformed section is reported and the other section still counts.
func (a *Auditor) collectLockfile(projectPath string, versions map[string]string) {
	path := filepath.Join(projectPath, lockfileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			a.Log.Infof("no %s found, auditing manifest versions only", lockfileName)
			return
		}
		a.Log.Warnf("failed to read %s: %v", path, err)
		return
	}

	var lock lockfileJSON
	if err := json.Unmarshal(data, &lock); err != nil {
		a.Log.Warnf("invalid %s: %v", path, err)
		return
	}

	if len(lock.Dependencies) > 0 {
		var deps map[string]dependencyNode
		if err := json.Unmarshal(lock.Dependencies, &deps); err != nil {
			a.Log.Warnf("malformed dependencies section in %s: %v", path, err)
		} else {
			collectNested(deps, versions)
		}
	}

	if len(lock.Packages) > 0 {
		var pkgs map[string]packageEntry
		if err := json.Unmarshal(lock.Packages, &pkgs); err != nil {
			a.Log.Warnf("malformed packages section in %s: %v", path, err)
		} else {
			collectFlattened(pkgs, versions)
		}
	}
}

// collectNested walks the nested schema depth-first. A node's version is
// recorded before its children so deeper resolutions win name collisions.
// Keys are visited in sorted order, which matches npm's alphabetical
// output.
func collectNested(deps map[string]dependencyNode, versions map[string]string) {
	for _, name := range sortedKeys(deps) {
		node := deps[name]
		if node.Version != "" {
			versions[name] = CleanVersion(node.Version)
		}
		if len(node.Dependencies) > 0 {
			collectNested(node.Dependencies, versions)
		}
	}
}

// collectFlattened records the top-level entries of the flattened schema.
// Only paths containing the install-directory marker exactly once are
// taken: deeper paths belong to another package's private subtree and may
// pin a different major of the same name. The empty-string key holds the
// project itself and never carries the marker.
func collectFlattened(pkgs map[string]packageEntry, versions map[string]string) {
	for _, path := range sortedKeys(pkgs) {
		if strings.Count(path, installDirMarker) != 1 {
			continue
		}
		entry := pkgs[path]
		if entry.Version == "" {
			continue
		}
		name := path[strings.Index(path, installDirMarker)+len(installDirMarker):]
		versions[name] = CleanVersion(entry.Version)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
