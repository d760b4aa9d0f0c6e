package achievement

import "github.com/osse101/UserAchievements_Go/internal/domain"

// CompletionPercentage returns completed as an integer percentage of total,
// truncated toward zero. A game with no achievements counts as 0%.
//
// The result is not clamped: upstream data reporting more completions than
// exist yields a value above 100.
func CompletionPercentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return completed * 100 / total
}

// AveragePercentage returns the floor of the mean percentage, or 0 for no games
func AveragePercentage(percentages []domain.PerGamePercentage) int {
	if len(percentages) == 0 {
		return 0
	}
	sum := 0
	for _, p := range percentages {
		sum += p.AchievementPercentage
	}
	avg := sum / len(percentages)
	// integer division truncates toward zero; floor negative sums explicitly
	if sum < 0 && sum%len(percentages) != 0 {
		avg--
	}
	return avg
}
