package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vvka-141/dmart/internal/config"
)

// clearEnvOverrides blanks the DMART_* variables for the test so ambient
// environment state cannot redirect the resolved paths.
func clearEnvOverrides(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvStore, "")
	t.Setenv(config.EnvReport, "")
}

// writeProject creates a temp project directory populated with the given
// files and returns its path.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func resetLoadFlags() {
	loadFlags = loadFlagValues{}
}

func resetReportFlags() {
	reportFlags = reportFlagValues{}
}
