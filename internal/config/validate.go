package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidWorkers indicates a negative worker count
	ErrInvalidWorkers = errors.New("invalid worker count")

	// ErrInvalidDepth indicates a negative traversal depth
	ErrInvalidDepth = errors.New("invalid max depth")

	// ErrInvalidFileSize indicates a negative file size limit
	ErrInvalidFileSize = errors.New("invalid max file size")

	// ErrInvalidCacheCapacity indicates a negative cache capacity
	ErrInvalidCacheCapacity = errors.New("invalid cache capacity")
)

// Validate checks that the configuration is valid and complete.
// Path lists may be empty; the extractor handles empty exclusion sets
// gracefully. Numeric limits use zero as "unset", so only negative values
// are rejected.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Scan.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: workers cannot be negative, got %d", ErrInvalidWorkers, cfg.Scan.Workers))
	}

	if cfg.Scan.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("%w: max_depth cannot be negative, got %d", ErrInvalidDepth, cfg.Scan.MaxDepth))
	}

	if cfg.Scan.MaxFileSize < 0 {
		errs = append(errs, fmt.Errorf("%w: max_file_size cannot be negative, got %d", ErrInvalidFileSize, cfg.Scan.MaxFileSize))
	}

	if cfg.Scan.CacheCapacity < 0 {
		errs = append(errs, fmt.Errorf("%w: cache_capacity cannot be negative, got %d", ErrInvalidCacheCapacity, cfg.Scan.CacheCapacity))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
