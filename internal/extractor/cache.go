package extractor

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/maypok86/otter"

	"github.com/mvp-joe/project-prism/internal/extractor/analyzers"
)

// defaultCacheCapacity bounds the analysis cache when the caller does not
// size it explicitly.
const defaultCacheCapacity = 4096

// analysisCache memoizes per-file analysis batches across runs. Analysis is
// a pure function of (content, rule table), so a key derived from the file
// path, its content hash, and the rule-table version can safely serve the
// previous batch when a file has not changed between scans.
type analysisCache struct {
	cache otter.Cache[string, *analyzers.Batch]
}

func newAnalysisCache(capacity int) (*analysisCache, error) {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	c, err := otter.MustBuilder[string, *analyzers.Batch](capacity).Build()
	if err != nil {
		return nil, fmt.Errorf("building analysis cache: %w", err)
	}
	return &analysisCache{cache: c}, nil
}

// cacheKey ties a cached batch to the exact content and rule set that
// produced it. Format: {relPath}@{contentHash}:v{tableVersion}.
func cacheKey(relPath, content string) string {
	sum := sha256.Sum256([]byte(content))
	return fmt.Sprintf("%s@%s:v%d", relPath, hex.EncodeToString(sum[:]), analyzers.TableVersion)
}

func (c *analysisCache) get(key string) (*analyzers.Batch, bool) {
	return c.cache.Get(key)
}

func (c *analysisCache) put(key string, b *analyzers.Batch) {
	c.cache.Set(key, b)
}

func (c *analysisCache) close() {
	c.cache.Close()
}
