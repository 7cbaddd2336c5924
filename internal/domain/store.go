package domain

// Store Model
type Store struct {
	ID       uint   `gorm:"primaryKey"`            // Primary key
	Name     string `gorm:"size:50;not null"`      // Store name
	Address  string `gorm:"size:255"`              // Store address
	Contact  string `gorm:"size:50"`               // Store phone
	IsActive bool   `gorm:"not null;default:true"` // Soft-delete flag
}
