package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader creates a loader that discovers .prism.yml (or .prism.yaml) in
// the given root directory. A missing file is fine; defaults apply.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// NewFileLoader creates a loader bound to an explicit config file.
// Unlike NewLoader, a missing or unreadable file is an error.
func NewFileLoader(path string) Loader {
	return &loader{
		configFile: path,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (PRISM_*)
// 2. Config file (.prism.yml, .prism.yaml, or the explicit file)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	// Configure viper
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName(".prism")
		v.SetConfigType("yaml")
		v.AddConfigPath(l.rootDir)
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("PRISM")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., PRISM_SCAN_WORKERS)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Bind environment variables to config keys
	v.BindEnv("scan.workers")
	v.BindEnv("scan.max_depth")
	v.BindEnv("scan.max_file_size")
	v.BindEnv("scan.retain_content")
	v.BindEnv("scan.gitignore")
	v.BindEnv("scan.cache_capacity")

	// Set defaults in viper
	setDefaults(v)

	// Try to read config file
	if err := v.ReadInConfig(); err != nil {
		if l.configFile != "" {
			// An explicit file was requested; failing to read it is fatal
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Some other error occurred while reading the config file
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate the configuration
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	// Paths defaults
	v.SetDefault("paths.ignore_dirs", defaults.Paths.IgnoreDirs)
	v.SetDefault("paths.ignore_files", defaults.Paths.IgnoreFiles)
	v.SetDefault("paths.binary_extensions", defaults.Paths.BinaryExtensions)
	v.SetDefault("paths.config_extensions", defaults.Paths.ConfigExtensions)
	v.SetDefault("paths.doc_extensions", defaults.Paths.DocExtensions)

	// Scan defaults
	v.SetDefault("scan.workers", defaults.Scan.Workers)
	v.SetDefault("scan.max_depth", defaults.Scan.MaxDepth)
	v.SetDefault("scan.max_file_size", defaults.Scan.MaxFileSize)
	v.SetDefault("scan.retain_content", defaults.Scan.RetainContent)
	v.SetDefault("scan.gitignore", defaults.Scan.RespectGitignore)
	v.SetDefault("scan.cache_capacity", defaults.Scan.CacheCapacity)
}
