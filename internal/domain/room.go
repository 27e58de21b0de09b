package domain

// Room Model
type Room struct {
	ID         uint     `gorm:"primaryKey" json:"id"`                  // Primary key
	RoomNumber string   `gorm:"unique;not null" json:"roomNumber"`     // Unique human-readable room number
	Floor      int      `gorm:"not null" json:"floor"`                 // Floor the room is on
	Status     string   `gorm:"not null;default:Vacant" json:"status"` // Room status: Vacant or Occupied
	Rate       *float64 `json:"rate"`                                  // Nightly rate, nullable (defaults to 0 on create)
	TenantID   *uint    `json:"tenantId"`                              // Informational tenant reference, no constraint
}
