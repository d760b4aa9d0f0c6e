package achievement

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/UserAchievements_Go/internal/domain"
	"github.com/osse101/UserAchievements_Go/internal/metrics"
)

// Cache stores computed results in three independently expiring key families.
// Implementations must be safe for concurrent use.
type Cache interface {
	GetAllLevels() ([]domain.LevelResult, bool)
	SetAllLevels(results []domain.LevelResult)
	GetUserLevel(userID int) (domain.LevelResult, bool)
	SetUserLevel(result domain.LevelResult)
	GetAchievements(userID int) ([]domain.PerGamePercentage, bool)
	SetAchievements(userID int, percentages []domain.PerGamePercentage)
	Stats() CacheStats
}

// CacheConfig holds configuration for the result cache
type CacheConfig struct {
	Size            int           // Maximum entries per key family
	AllLevelsTTL    time.Duration // Lifetime of the all-users result
	UserLevelTTL    time.Duration // Lifetime of a single user's level
	AchievementsTTL time.Duration // Lifetime of a user's per-game percentages
}

// DefaultCacheConfig returns the default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Size:            DefaultCacheSize,
		AllLevelsTTL:    DefaultAllLevelsTTL,
		UserLevelTTL:    DefaultUserLevelTTL,
		AchievementsTTL: DefaultAchievementsTTL,
	}
}

// CacheStats holds cache performance statistics
type CacheStats struct {
	Enabled bool   `json:"enabled"`
	Hits    int64  `json:"hits"`
	Misses  int64  `json:"misses"`
	Size    int    `json:"size"`
	Version string `json:"schema_version,omitempty"`
}

type cacheEntry[V any] struct {
	Version  string
	Value    V
	CachedAt time.Time
}

// family is one key namespace backed by its own expiring LRU
type family[V any] struct {
	name  string
	lru   *expirable.LRU[int, *cacheEntry[V]]
	clone func(V) V
	stats *cacheCounters
}

type cacheCounters struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func newFamily[V any](name string, size int, ttl time.Duration, clone func(V) V, stats *cacheCounters) *family[V] {
	return &family[V]{
		name:  name,
		lru:   expirable.NewLRU[int, *cacheEntry[V]](size, nil, ttl),
		clone: clone,
		stats: stats,
	}
}

func (f *family[V]) get(key int) (V, bool) {
	var zero V
	entry, found := f.lru.Get(key)
	if found && entry.Version != CacheSchemaVersion {
		f.lru.Remove(key)
		found = false
	}
	if !found {
		f.stats.misses.Add(1)
		metrics.CacheRequestsTotal.WithLabelValues(f.name, metrics.CacheResultMiss).Inc()
		return zero, false
	}
	f.stats.hits.Add(1)
	metrics.CacheRequestsTotal.WithLabelValues(f.name, metrics.CacheResultHit).Inc()
	return f.clone(entry.Value), true
}

func (f *family[V]) set(key int, value V) {
	f.lru.Add(key, &cacheEntry[V]{
		Version:  CacheSchemaVersion,
		Value:    f.clone(value),
		CachedAt: time.Now(),
	})
}

// LRUCache is the in-memory Cache with per-family TTLs
type LRUCache struct {
	counters     cacheCounters
	allLevels    *family[[]domain.LevelResult]
	userLevels   *family[domain.LevelResult]
	achievements *family[[]domain.PerGamePercentage]
}

// NewLRUCache creates a cache from cfg, filling unset fields with defaults
func NewLRUCache(cfg CacheConfig) *LRUCache {
	def := DefaultCacheConfig()
	if cfg.Size <= 0 {
		cfg.Size = def.Size
	}
	if cfg.AllLevelsTTL <= 0 {
		cfg.AllLevelsTTL = def.AllLevelsTTL
	}
	if cfg.UserLevelTTL <= 0 {
		cfg.UserLevelTTL = def.UserLevelTTL
	}
	if cfg.AchievementsTTL <= 0 {
		cfg.AchievementsTTL = def.AchievementsTTL
	}

	c := &LRUCache{}
	c.allLevels = newFamily(FamilyAllLevels, 1, cfg.AllLevelsTTL, slices.Clone[[]domain.LevelResult, domain.LevelResult], &c.counters)
	c.userLevels = newFamily(FamilyUserLevel, cfg.Size, cfg.UserLevelTTL, identity[domain.LevelResult], &c.counters)
	c.achievements = newFamily(FamilyAchievements, cfg.Size, cfg.AchievementsTTL, slices.Clone[[]domain.PerGamePercentage, domain.PerGamePercentage], &c.counters)
	return c
}

func identity[V any](v V) V { return v }

func (c *LRUCache) GetAllLevels() ([]domain.LevelResult, bool) {
	return c.allLevels.get(allLevelsKey)
}

func (c *LRUCache) SetAllLevels(results []domain.LevelResult) {
	c.allLevels.set(allLevelsKey, results)
}

func (c *LRUCache) GetUserLevel(userID int) (domain.LevelResult, bool) {
	return c.userLevels.get(userID)
}

// SetUserLevel caches a found result. Not-found sentinels are ignored.
func (c *LRUCache) SetUserLevel(result domain.LevelResult) {
	if !result.Found() {
		return
	}
	c.userLevels.set(result.UserID, result)
}

func (c *LRUCache) GetAchievements(userID int) ([]domain.PerGamePercentage, bool) {
	return c.achievements.get(userID)
}

func (c *LRUCache) SetAchievements(userID int, percentages []domain.PerGamePercentage) {
	c.achievements.set(userID, percentages)
}

// Stats returns hit and miss counts across all families plus the live entry count
func (c *LRUCache) Stats() CacheStats {
	return CacheStats{
		Enabled: true,
		Hits:    c.counters.hits.Load(),
		Misses:  c.counters.misses.Load(),
		Size:    c.allLevels.lru.Len() + c.userLevels.lru.Len() + c.achievements.lru.Len(),
		Version: CacheSchemaVersion,
	}
}

// NopCache never stores anything; every lookup misses
type NopCache struct{}

func (NopCache) GetAllLevels() ([]domain.LevelResult, bool)             { return nil, false }
func (NopCache) SetAllLevels([]domain.LevelResult)                      {}
func (NopCache) GetUserLevel(int) (domain.LevelResult, bool)            { return domain.LevelResult{}, false }
func (NopCache) SetUserLevel(domain.LevelResult)                        {}
func (NopCache) GetAchievements(int) ([]domain.PerGamePercentage, bool) { return nil, false }
func (NopCache) SetAchievements(int, []domain.PerGamePercentage)        {}
func (NopCache) Stats() CacheStats                                      { return CacheStats{} }
