package achievement

import "github.com/osse101/UserAchievements_Go/internal/domain"

// Classify maps a game count and average completion percentage to a level.
// Tiers are checked from Platinum down and the first match wins.
func Classify(count, average int) domain.Level {
	switch {
	case count >= PlatinumMinGames && average == PlatinumMinAverage:
		return domain.LevelPlatinum
	case count >= GoldMinGames && average >= GoldMinAverage:
		return domain.LevelGold
	case count >= SilverMinGames && average >= SilverMinAverage:
		return domain.LevelSilver
	case count > BronzeMinGamesExclusive:
		return domain.LevelBronze
	default:
		return domain.LevelNone
	}
}

// LevelFor classifies a user's per-game percentages
func LevelFor(percentages []domain.PerGamePercentage) domain.Level {
	if len(percentages) == 0 {
		return domain.LevelNone
	}
	return Classify(len(percentages), AveragePercentage(percentages))
}
