package domain

// Game represents a title and the number of achievements it offers
type Game struct {
	ID                         int    `json:"id"`
	Title                      string `json:"title"`
	TotalAvailableAchievements int    `json:"totalAvailableAchievements"`
}

// GameCompletionRecord is one user's progress on one game.
// TotalCompletedAchievements is not checked against the game's total.
type GameCompletionRecord struct {
	User                       User `json:"user"`
	Game                       Game `json:"game"`
	TotalCompletedAchievements int  `json:"totalCompletedAchievements"`
}

// PerGamePercentage is the derived completion percentage for a single owned game
type PerGamePercentage struct {
	UserID                int `json:"userId"`
	GameID                int `json:"gameId"`
	AchievementPercentage int `json:"achievementPercentage"`
}
