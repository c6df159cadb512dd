package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Load returns a prefab spec by name. A file on disk under prefabs/
// takes precedence over the embedded copy so tuning can be edited
// without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "prefabs/") {
		return strings.TrimPrefix(s, "prefabs/")
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
