package domain

// Employee code bounds (inclusive)
const (
	MinEmployeeCode = 100000
	MaxEmployeeCode = 999999
)

// Employee Model
type Employee struct {
	ID       uint  `gorm:"primaryKey"`                                                      // Primary key
	Code     int   `gorm:"uniqueIndex;not null"`                                            // 6-digit employee code
	Type     Role  `gorm:"type:varchar(10);not null"`                                       // MANAGER or STAFF
	IsActive bool  `gorm:"not null;default:true"`                                           // Soft-delete flag
	UserID   uint  `gorm:"not null;index"`                                                  // Foreign key to User
	StoreID  uint  `gorm:"not null;index"`                                                  // Foreign key to Store
	User     User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`  // Owning user
	Store    Store `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"` // Assigned store
}

// ValidEmployeeCode reports whether code lies in the employee code range
func ValidEmployeeCode(code int) bool {
	return code >= MinEmployeeCode && code <= MaxEmployeeCode
}
