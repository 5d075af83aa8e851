package entity

// User is the current session's profile data. It is owned exclusively by
// the session store; handlers only mutate it through store intents.
//
// Favorites holds benefit ids; insertion order carries no meaning.
type User struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	IsVerified bool     `json:"is_verified"`
	University string   `json:"university,omitempty"`
	Favorites  []string `json:"favorites"`
}

// HasFavorite reports membership of benefitID in the favorites set.
func (u *User) HasFavorite(benefitID string) bool {
	if u == nil {
		return false
	}
	for _, id := range u.Favorites {
		if id == benefitID {
			return true
		}
	}
	return false
}

// ToggleFavorite flips membership of benefitID and reports whether the id
// is a favorite afterwards. Removing an absent id is a no-op.
func (u *User) ToggleFavorite(benefitID string) bool {
	for i, id := range u.Favorites {
		if id == benefitID {
			u.Favorites = append(u.Favorites[:i], u.Favorites[i+1:]...)
			return false
		}
	}
	u.Favorites = append(u.Favorites, benefitID)
	return true
}
