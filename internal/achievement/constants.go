package achievement

import "time"

// Level thresholds, checked from the highest tier down
const (
	PlatinumMinGames   = 50
	PlatinumMinAverage = 100

	GoldMinGames   = 25
	GoldMinAverage = 80

	SilverMinGames   = 10
	SilverMinAverage = 75

	// BronzeMinGamesExclusive is a strict lower bound: Bronze needs more than this many games
	BronzeMinGamesExclusive = 10
)

// Cache defaults
const (
	DefaultCacheSize         = 1000
	DefaultAllLevelsTTL      = 5 * time.Minute
	DefaultUserLevelTTL      = 2 * time.Minute
	DefaultAchievementsTTL   = 3 * time.Minute
	DefaultFanOutConcurrency = 8

	// CacheSchemaVersion is bumped when cached value shapes change so old entries read as misses
	CacheSchemaVersion = "1.0"
)

// Cache key families
const (
	FamilyAllLevels    = "all_levels"
	FamilyUserLevel    = "user_level"
	FamilyAchievements = "achievements"

	// allLevelsKey is the only key in the all-levels family
	allLevelsKey = 0
)

// Log messages
const (
	LogMsgUserNotFound    = "User not found upstream"
	LogMsgLevelComputed   = "Achievement level computed"
	LogMsgLevelsListed    = "Achievement levels listed"
	LogMsgCacheHit        = "Cache hit"
	LogMsgDroppedNotFound = "Dropped user missing from upstream"
	LogMsgCacheSkipped    = "Skipped caching result of cancelled request"
)
