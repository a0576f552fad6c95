package audit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "manifest-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	manifest := `{
		"name": "fixture-app",
		"version": "1.0.0",
		"dependencies": {"lodash": "^4.17.21"},
		"devDependencies": {"jest": "^29.0.0"},
		"peerDependencies": {"react": ">=17.0.0"}
	}`
	err = os.WriteFile(filepath.Join(tmpDir, "package.json"), []byte(manifest), 0644)
	require.NoError(t, err)

	pkg, err := loadManifest(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "fixture-app", pkg.Name)
	assert.Equal(t, "^4.17.21", pkg.Dependencies["lodash"])
	assert.Equal(t, "^29.0.0", pkg.DevDependencies["jest"])
	assert.Equal(t, ">=17.0.0", pkg.PeerDependencies["react"])
}

func TestLoadManifestMissing(t *testing.T) {
	_, err := loadManifest(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package.json")
}

func TestLoadManifestInvalid(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "manifest-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	err = os.WriteFile(filepath.Join(tmpDir, "package.json"), []byte("{not json"), 0644)
	require.NoError(t, err)

	_, err = loadManifest(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestSeedVersionsCategoryPrecedence(t *testing.T) {
	pkg := &packageJSON{
		Dependencies:     map[string]string{"shared": "1.0.0", "only-dep": "2.0.0"},
		DevDependencies:  map[string]string{"shared": "1.1.0"},
		PeerDependencies: map[string]string{"shared": "1.2.0", "only-peer": "3.0.0"},
	}

	versions := make(map[string]string)
	pkg.seedVersions(versions)

	// Later categories overwrite earlier ones.
	assert.Equal(t, "1.2.0", versions["shared"])
	assert.Equal(t, "2.0.0", versions["only-dep"])
	assert.Equal(t, "3.0.0", versions["only-peer"])
}
