// Package config loads the optional dmart.yaml project file and resolves the
// effective paths for a run. Nothing here is ambient: every setting ends up
// in an explicit structure handed to the command that needs it.
//
// Precedence, highest first: command-line flags (applied by the CLI layer),
// DMART_* environment variables, a .env file in the project directory,
// dmart.yaml, documented defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/dmart/internal/ingest"
	"github.com/vvka-141/dmart/pkg/dmart"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
// A missing config file is not an error for the commands: every setting has
// a default.
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the project configuration filename.
const ConfigFileName = "dmart.yaml"

// EnvFileName is the optional per-project environment file read before
// applying DMART_* overrides.
const EnvFileName = ".env"

// Environment variables recognized as overrides.
const (
	EnvStore  = "DMART_STORE"
	EnvReport = "DMART_REPORT_SQL"
)

// ProjectConfig mirrors dmart.yaml.
type ProjectConfig struct {
	// Store is the SQLite store file, relative to the project directory
	// unless absolute. Default: ecom.db.
	Store string `yaml:"store"`

	// Report is the report query file. Default: report.sql.
	Report string `yaml:"report"`

	// Files overrides the source CSV filename per entity, keyed by entity
	// name (categories, products, customers, orders, reviews).
	// Default: <entity>.csv.
	Files map[string]string `yaml:"files"`
}

// Load reads dmart.yaml from sourcePath.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolved holds the effective paths for a run after applying the precedence
// chain. All paths are anchored to the project directory.
type Resolved struct {
	StorePath string
	QueryPath string

	// DataFiles maps entity names to CSV paths, one entry per entity.
	DataFiles map[string]string
}

// Resolve computes the effective paths for projectPath. cfg may be nil when
// no dmart.yaml exists.
func Resolve(projectPath string, cfg *ProjectConfig) (*Resolved, error) {
	if cfg == nil {
		cfg = &ProjectConfig{}
	}

	overlay, err := readEnvFile(projectPath)
	if err != nil {
		return nil, err
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return overlay[key]
	}

	storePath := firstNonEmpty(lookup(EnvStore), cfg.Store, dmart.DefaultStoreFile)
	queryPath := firstNonEmpty(lookup(EnvReport), cfg.Report, dmart.DefaultQueryFile)

	known := make(map[string]bool, len(ingest.IngestOrder))
	for _, e := range ingest.IngestOrder {
		known[e.String()] = true
	}
	for name := range cfg.Files {
		if !known[name] {
			return nil, fmt.Errorf("unknown entity %q in files section: %w", name, dmart.ErrInvalidConfig)
		}
	}

	files := make(map[string]string, len(ingest.IngestOrder))
	for _, e := range ingest.IngestOrder {
		name := e.String()
		file := firstNonEmpty(cfg.Files[name], e.DefaultFile())
		files[name] = anchor(projectPath, file)
	}

	return &Resolved{
		StorePath: anchor(projectPath, storePath),
		QueryPath: anchor(projectPath, queryPath),
		DataFiles: files,
	}, nil
}

// readEnvFile parses the project's .env file into a map. A missing file
// yields an empty map; the file never mutates the process environment.
func readEnvFile(projectPath string) (map[string]string, error) {
	path := filepath.Join(projectPath, EnvFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	overlay, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return overlay, nil
}

func anchor(projectPath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectPath, p)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
