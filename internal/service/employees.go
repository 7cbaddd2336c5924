package service

import (
	"bungeoppang/internal/apperror" // Error taxonomy
	"bungeoppang/internal/domain"   // Domain models
	"context"                       // Request context
	"errors"                        // Error inspection
	"fmt"                           // Message formatting

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Association clauses
)

// RegisterEmployee assigns a user to a store under a freshly allocated code.
// The user is resolved before the store; the first missing one is reported.
func (s *Service) RegisterEmployee(ctx context.Context, in RegisterEmployeeInput) (*EmployeeRegistered, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(in.Type) // Wire label to stored code
	if err != nil {
		return nil, apperror.Validation("type must be one of %s, %s", domain.RoleManager.Label(), domain.RoleStaff.Label())
	}

	var (
		user     domain.User     // Resolved user
		store    domain.Store    // Resolved store
		employee domain.Employee // Inserted employee
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, *in.UserID).Error; err != nil {
			return lookupFailed(err, "user")
		}
		if err := tx.First(&store, *in.StoreID).Error; err != nil {
			return lookupFailed(err, "store")
		}
		code, err := s.allocateCode(tx) // Draw an unused code
		if err != nil {
			return err
		}
		employee = domain.Employee{
			Code:     code,     // Allocated code
			Type:     role,     // Stored role code
			IsActive: true,     // New employees are active
			UserID:   user.ID,  // Owning user
			StoreID:  store.ID, // Assigned store
		}
		// Insert without touching the loaded user and store rows
		if err := tx.Omit(clause.Associations).Create(&employee).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflict("employee code was taken concurrently, please retry", err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, classify(err, "failed to register employee")
	}
	return &EmployeeRegistered{
		ID:        employee.ID,           // Employee ID
		Code:      employee.Code,         // 6-digit code
		UserName:  user.DisplayName(),    // User display name
		StoreName: store.Name,            // Store name
		Position:  employee.Type.Label(), // Role label
	}, nil
}

// ListEmployees returns every active employee with its user and store resolved
func (s *Service) ListEmployees(ctx context.Context) ([]EmployeeSummary, error) {
	var employees []domain.Employee // Slice to hold employees
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Store").
		Where("is_active = ?", true).
		Order("id").
		Find(&employees).Error
	if err != nil {
		return nil, apperror.Internal("failed to list employees", err)
	}
	out := make([]EmployeeSummary, len(employees)) // Empty listing encodes as []
	for i, e := range employees {
		// A zero ID means the preload found no row
		if e.User.ID == 0 {
			return nil, apperror.Internal(fmt.Sprintf("employee %d references missing user %d", e.ID, e.UserID), nil)
		}
		if e.Store.ID == 0 {
			return nil, apperror.Internal(fmt.Sprintf("employee %d references missing store %d", e.ID, e.StoreID), nil)
		}
		out[i] = EmployeeSummary{
			ID:        e.ID,                 // Employee ID
			Code:      e.Code,               // 6-digit code
			UserName:  e.User.DisplayName(), // User display name
			StoreName: e.Store.Name,         // Store name
			Position:  e.Type.Label(),       // Role label
			UserEmail: e.User.Email,         // User email
		}
	}
	return out, nil
}
