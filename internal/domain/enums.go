package domain

import "fmt" // Error formatting

// Gender is stored by code and exchanged on the wire by its Korean label
type Gender string

const (
	GenderMale   Gender = "MALE"   // 남성
	GenderFemale Gender = "FEMALE" // 여성
)

var genderLabels = map[Gender]string{
	GenderMale:   "남성", // Male
	GenderFemale: "여성", // Female
}

// Label returns the wire label, or an empty string for an unknown gender
func (g Gender) Label() string {
	return genderLabels[g]
}

// IsValid reports whether g is a known gender
func (g Gender) IsValid() bool {
	_, ok := genderLabels[g] // Known codes have a label
	return ok
}

// ParseGender converts a wire label into a Gender
func ParseGender(label string) (Gender, error) {
	for g, l := range genderLabels {
		if l == label {
			return g, nil // Known label
		}
	}
	return "", fmt.Errorf("invalid gender %q", label)
}

// Role is an employee position, stored by code and exchanged by its Korean label
type Role string

const (
	RoleManager Role = "MANAGER" // 매니저
	RoleStaff   Role = "STAFF"   // 스태프
)

var roleLabels = map[Role]string{
	RoleManager: "매니저", // Manager
	RoleStaff:   "스태프", // Staff
}

// Label returns the wire label, or an empty string for an unknown role
func (r Role) Label() string {
	return roleLabels[r]
}

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	_, ok := roleLabels[r] // Known codes have a label
	return ok
}

// ParseRole converts a wire label into a Role
func ParseRole(label string) (Role, error) {
	for r, l := range roleLabels {
		if l == label {
			return r, nil // Known label
		}
	}
	return "", fmt.Errorf("invalid position %q", label)
}
