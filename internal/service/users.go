package service

import (
	"bungeoppang/internal/apperror" // Error taxonomy
	"bungeoppang/internal/domain"   // Domain models
	"context"                       // Request context
	"errors"                        // Error inspection

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// CreateUser validates the signup payload, rejects duplicate emails and stores
// the user with a bcrypt password hash.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*UserCreated, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	gender, err := domain.ParseGender(in.Gender) // Wire label to stored code
	if err != nil {
		return nil, apperror.Validation("gender must be one of %s, %s", domain.GenderMale.Label(), domain.GenderFemale.Label())
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost) // Hash the password
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperror.Validation("password must be at most 72 bytes")
		}
		return nil, apperror.Internal("failed to hash password", err)
	}

	// Create new user
	user := domain.User{
		FirstName: in.FirstName, // Optional first name
		LastName:  in.LastName,  // Last name
		Email:     in.Email,     // Unique email
		Password:  string(hash), // Hashed password
		Address:   in.Address,   // Postal address
		Contact:   in.Contact,   // Contact phone
		Gender:    gender,       // Stored gender code
		IsActive:  true,         // New users are active
		IsStaff:   false,        // Staff flag is never set here
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Check if email already exists, active or not
		var count int64
		if err := tx.Model(&domain.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
			return apperror.Internal("failed to check email", err)
		}
		if count > 0 {
			return apperror.Conflict("email already exists", nil)
		}
		if err := tx.Create(&user).Error; err != nil {
			// The unique index catches a concurrent signup with the same email
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflict("email already exists", err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, classify(err, "failed to create user")
	}
	return &UserCreated{ID: user.ID, Name: user.DisplayName(), Email: user.Email}, nil
}

// ListUsers returns every active user ordered by id
func (s *Service) ListUsers(ctx context.Context) ([]UserSummary, error) {
	var users []domain.User // Slice to hold users
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&users).Error; err != nil {
		return nil, apperror.Internal("failed to list users", err)
	}
	out := make([]UserSummary, len(users)) // Empty listing encodes as []
	for i, u := range users {
		out[i] = summarizeUser(u)
	}
	return out, nil
}

// GetUser returns one active user
func (s *Service) GetUser(ctx context.Context, id uint) (*UserSummary, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).First(&user, id).Error; err != nil {
		return nil, lookupFailed(err, "user")
	}
	summary := summarizeUser(user)
	return &summary, nil
}

// Authenticate checks credentials of an active user and returns the user's id
func (s *Service) Authenticate(ctx context.Context, in LoginInput) (uint, error) {
	if err := s.check(in); err != nil {
		return 0, err
	}
	var user domain.User
	err := s.db.WithContext(ctx).Where("email = ? AND is_active = ?", in.Email, true).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperror.Unauthorized("invalid credentials") // Unknown email
	}
	if err != nil {
		return 0, apperror.Internal("failed to look up user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return 0, apperror.Unauthorized("invalid credentials") // Wrong password
	}
	return user.ID, nil
}

func summarizeUser(u domain.User) UserSummary {
	return UserSummary{
		ID:      u.ID,             // User ID
		Name:    u.DisplayName(),  // Display name
		Email:   u.Email,          // User email
		Contact: u.Contact,        // Contact phone
		Gender:  u.Gender.Label(), // Gender label
		Address: u.Address,        // Postal address
	}
}
