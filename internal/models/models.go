package models

import (
	"time"
	"unicode"
)

// Note is a note as returned by the notes API.
type Note struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
}

// Modified returns the most recent of the creation and update times.
func (n Note) Modified() time.Time {
	if n.UpdatedAt.After(n.CreatedAt) {
		return n.UpdatedAt
	}

	return n.CreatedAt
}

// User is the account the session belongs to.
type User struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Initial returns the upper-cased first letter of the user's name, or "?"
// when the name is empty.
func (u User) Initial() string {
	for _, r := range u.Name {
		return string(unicode.ToUpper(r))
	}

	return "?"
}
