// Package audit joins a watch-list of package specifiers against the
// dependency versions an npm project actually resolves, flagging watched
// packages whose installed version has not moved past the requested one.
package audit

import (
	"github.com/sambabib/depwatch/pkg/logger"
)

// Record is the audit result for a single watched package found in the
// project.
type Record struct {
	Name      string `json:"name"`
	Installed string `json:"installed_version"`
	Requested string `json:"requested_version,omitempty"`
	Stale     bool   `json:"stale"`
}

// Auditor resolves a project's dependency versions and compares them
// against a watch-list.
type Auditor struct {
	Log *logger.Logger

	// IgnorePackages lists watched names excluded from the report.
	IgnorePackages []string
}

// New returns an Auditor reporting through log. A nil log discards all
// diagnostics.
func New(log *logger.Logger) *Auditor {
	if log == nil {
		log = logger.Discard()
	}
	return &Auditor{Log: log}
}

// Run performs one audit pass: read the project manifest (fatal if missing
// or invalid), fold in the lockfile (optional), read the watch-list (fatal
// if missing), then join the two by exact package name. Watched packages
// absent from the project are skipped without comment, and a version pair
// that cannot be compared is reported as a warning and counted as not
// stale. Records come back in watch-list order.
func (a *Auditor) Run(watchlistPath, projectPath string) ([]Record, error) {
	versions, err := a.resolveVersions(projectPath)
	if err != nil {
		return nil, err
	}
	a.Log.Debugf("resolved %d package versions in %s", len(versions), projectPath)

	entries, err := a.loadWatchlist(watchlistPath)
	if err != nil {
		return nil, err
	}
	a.Log.Infof("auditing %d watched packages against %s", len(entries), projectPath)

	var records []Record
	for _, entry := range entries {
		if a.isIgnored(entry.Name) {
			a.Log.Debugf("ignoring %s per configuration", entry.Name)
			continue
		}
		installed, ok := versions[entry.Name]
		if !ok || installed == "" {
			continue
		}
		stale, err := IsStale(installed, entry.Version)
		if err != nil {
			a.Log.Warnf("cannot compare versions for %s: %v", entry.Name, err)
			stale = false
		}
		records = append(records, Record{
			Name:      entry.Name,
			Installed: installed,
			Requested: entry.Version,
			Stale:     stale,
		})
	}
	return records, nil
}

// resolveVersions builds the name to installed-version map, manifest first
// and lockfile second so resolved versions overwrite declared ranges.
func (a *Auditor) resolveVersions(projectPath string) (map[string]string, error) {
	pkg, err := loadManifest(projectPath)
	if err != nil {
		return nil, err
	}

	versions := make(map[string]string)
	pkg.seedVersions(versions)
	a.Log.Debugf("seeded %d direct dependencies from %s", len(versions), manifestName)

	a.collectLockfile(projectPath, versions)
	return versions, nil
}

func (a *Auditor) isIgnored(name string) bool {
	for _, ignored := range a.IgnorePackages {
		if ignored == name {
			return true
		}
	}
	return false
}
