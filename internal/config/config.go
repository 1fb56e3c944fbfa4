package config

import (
	"github.com/mvp-joe/project-prism/internal/extractor"
)

// Config represents the complete prism configuration.
// It can be loaded from .prism.yml with environment variable overrides.
type Config struct {
	Paths PathsConfig `yaml:"paths" mapstructure:"paths"`
	Scan  ScanConfig  `yaml:"scan" mapstructure:"scan"`
}

// PathsConfig defines which files are excluded and how the rest classify.
type PathsConfig struct {
	IgnoreDirs       []string `yaml:"ignore_dirs" mapstructure:"ignore_dirs"`             // directory names pruned anywhere in the tree
	IgnoreFiles      []string `yaml:"ignore_files" mapstructure:"ignore_files"`           // base-name patterns, exact or glob
	BinaryExtensions []string `yaml:"binary_extensions" mapstructure:"binary_extensions"` // extensions never read
	ConfigExtensions []string `yaml:"config_extensions" mapstructure:"config_extensions"` // extensions captured as config files
	DocExtensions    []string `yaml:"doc_extensions" mapstructure:"doc_extensions"`       // extensions recorded as documentation
}

// ScanConfig defines traversal and analysis behavior.
type ScanConfig struct {
	Workers          int   `yaml:"workers" mapstructure:"workers"`               // analysis pool size, 0 means one per CPU
	MaxDepth         int   `yaml:"max_depth" mapstructure:"max_depth"`           // traversal depth limit, 0 means unlimited
	MaxFileSize      int64 `yaml:"max_file_size" mapstructure:"max_file_size"`   // per-file byte limit, 0 means unlimited
	RetainContent    bool  `yaml:"retain_content" mapstructure:"retain_content"` // keep raw content on file records
	RespectGitignore bool  `yaml:"gitignore" mapstructure:"gitignore"`           // honor the root .gitignore
	CacheCapacity    int   `yaml:"cache_capacity" mapstructure:"cache_capacity"` // analysis cache entries, 0 means package default
}

// Default returns a configuration matching the extractor's stock options.
func Default() *Config {
	opts := extractor.DefaultOptions()
	return &Config{
		Paths: PathsConfig{
			IgnoreDirs:       opts.IgnoredDirs,
			IgnoreFiles:      opts.IgnoredFiles,
			BinaryExtensions: opts.BinaryExtensions,
			ConfigExtensions: opts.ConfigExtensions,
			DocExtensions:    opts.DocExtensions,
		},
		Scan: ScanConfig{
			Workers:          opts.Workers,
			MaxDepth:         opts.MaxDepth,
			MaxFileSize:      opts.MaxFileSize,
			RetainContent:    opts.RetainContent,
			RespectGitignore: opts.RespectGitignore,
			CacheCapacity:    opts.CacheCapacity,
		},
	}
}

// ExtractorOptions converts the configuration into extractor options.
// Progress reporting is a runtime concern and is left for the caller to set.
func (c *Config) ExtractorOptions() extractor.Options {
	return extractor.Options{
		IgnoredDirs:      c.Paths.IgnoreDirs,
		IgnoredFiles:     c.Paths.IgnoreFiles,
		BinaryExtensions: c.Paths.BinaryExtensions,
		ConfigExtensions: c.Paths.ConfigExtensions,
		DocExtensions:    c.Paths.DocExtensions,
		Workers:          c.Scan.Workers,
		MaxDepth:         c.Scan.MaxDepth,
		MaxFileSize:      c.Scan.MaxFileSize,
		RetainContent:    c.Scan.RetainContent,
		RespectGitignore: c.Scan.RespectGitignore,
		CacheCapacity:    c.Scan.CacheCapacity,
	}
}
