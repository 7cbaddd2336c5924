package domain

// User Model
type User struct {
	ID        uint   `gorm:"primaryKey"`                    // Primary key
	FirstName string `gorm:"size:50"`                       // Optional first name
	LastName  string `gorm:"size:50;not null"`              // Last name
	Email     string `gorm:"size:100;uniqueIndex;not null"` // Unique email
	Password  string `gorm:"size:255;not null"`             // Hashed password
	Address   string `gorm:"size:255"`                      // Postal address
	Contact   string `gorm:"size:50"`                       // Contact phone
	Gender    Gender `gorm:"type:varchar(10);not null"`     // MALE or FEMALE
	IsActive  bool   `gorm:"not null;default:true"`         // Soft-delete flag
	IsStaff   bool   `gorm:"not null;default:false"`        // Staff flag
}

// DisplayName returns the user's full name for responses
func (u User) DisplayName() string {
	return DisplayName(u.FirstName, u.LastName)
}
