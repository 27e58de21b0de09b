package domain

import "time" // Timestamps

// Announcement Model
type Announcement struct {
	ID       uint      `gorm:"primaryKey" json:"id"`  // Primary key
	Title    string    `json:"title"`                 // Announcement title
	Body     string    `gorm:"size:2000" json:"body"` // Announcement body, bounded length
	PostedAt time.Time `json:"postedAt"`              // Server-assigned at creation
}
