package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Location      string    `json:"location,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	Avatar        string    `json:"avatar,omitempty"`
	SkillsOffered []string  `json:"skills_offered"`
	SkillsWanted  []string  `json:"skills_wanted"`
	Availability  []string  `json:"availability"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"review_count"`
	IsPublic      bool      `json:"is_public"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HasSkill reports whether the user offers or wants the given skill
// (exact label match).
func (u *User) HasSkill(skill string) bool {
	for _, s := range u.SkillsOffered {
		if s == skill {
			return true
		}
	}
	for _, s := range u.SkillsWanted {
		if s == skill {
			return true
		}
	}
	return false
}

// IsAvailable reports whether any of the user's availability labels
// matches the given label exactly.
func (u *User) IsAvailable(label string) bool {
	for _, a := range u.Availability {
		if a == label {
			return true
		}
	}
	return false
}
