package domain

import "strings" // Role set helpers

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`            // Primary key
	Username string `gorm:"unique;not null" json:"username"` // Unique username
	Password string `gorm:"not null" json:"-"`               // Hashed password, never serialized
	Roles    string `gorm:"default:user" json:"roles"`       // Comma-joined role set, e.g. "user" or "user,admin"
}

// HasRole reports whether the user's role set contains the given role
func (u *User) HasRole(role string) bool {
	for _, r := range strings.Split(u.Roles, ",") {
		if strings.TrimSpace(r) == role {
			return true // Role found in the set
		}
	}
	return false // Role not present
}
