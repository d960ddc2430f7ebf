package cli

import (
	"errors"

	"github.com/vvka-141/dmart/internal/config"
	"github.com/vvka-141/dmart/pkg/dmart"
)

// resolveProjectConfig loads dmart.yaml from the project directory (absence
// is fine, every setting has a default) and resolves the effective paths.
func resolveProjectConfig(projectPath string, logger dmart.Logger) (*config.Resolved, error) {
	cfg, err := config.Load(projectPath)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, err
		}
		logger.Verbose("no %s in %s, using defaults", config.ConfigFileName, projectPath)
		cfg = nil
	}
	return config.Resolve(projectPath, cfg)
}
