package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const manifestName = "package.json"

// packageJSON is the slice of the project descriptor the audit cares
// about: the three direct dependency categories.
type packageJSON struct {
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// loadManifest reads package.json from the project root. A missing or
// invalid manifest aborts the audit.
func loadManifest(projectPath string) (*packageJSON, error) {
	path := filepath.Join(projectPath, manifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return &pkg, nil
}

// seedVersions merges the manifest's dependency categories into versions.
// Later categories overwrite earlier ones on a name collision, and values
// are recorded verbatim, range operators included.
func (p *packageJSON) seedVersions(versions map[string]string) {
	for name, ver := range p.Dependencies {
		versions[name] = ver
	}
	for name, ver := range p.DevDependencies {
		versions[name] = ver
	}
	for name, ver := range p.PeerDependencies {
		versions[name] = ver
	}
}
