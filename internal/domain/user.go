package domain

// User represents an upstream user account
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Valid reports whether the user carries a real upstream identifier.
// A zero-valued User is returned by the upstream client when a lookup fails.
func (u User) Valid() bool {
	return u.ID > 0
}

// OwnedGamesLibrary is the set of games a user owns, in upstream order
type OwnedGamesLibrary struct {
	User       User   `json:"user"`
	OwnedGames []Game `json:"ownedGames"`
}
