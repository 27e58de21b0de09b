package domain

// Tenant Model
type Tenant struct {
	ID      uint    `gorm:"primaryKey" json:"id"` // Primary key
	Name    string  `json:"name"`                 // Tenant name
	Room    *string `json:"room"`                 // Room number the tenant occupies, nullable (value match, not a foreign key)
	Contact string  `json:"contact"`              // Contact string (phone/email)
}
