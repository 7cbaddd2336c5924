package service

import "github.com/sirupsen/logrus" // Logrus for structured logging

// CreateUserInput is the signup payload
type CreateUserInput struct {
	FirstName string `json:"first_name" validate:"max=50"`         // Optional first name
	LastName  string `json:"last_name" validate:"required,max=50"` // Last name
	Email     string `json:"email" validate:"required,max=100"`    // Unique email
	Password  string `json:"password" validate:"required"`         // Plain password, hashed before storage
	Gender    string `json:"gender" validate:"required"`           // Gender label
	Address   string `json:"address" validate:"max=255"`           // Postal address
	Contact   string `json:"contact" validate:"max=50"`            // Contact phone
}

// LoginInput carries credentials for Authenticate
type LoginInput struct {
	Email    string `json:"email" validate:"required"`    // User email
	Password string `json:"password" validate:"required"` // Plain password
}

// CreateStoreInput is the store creation payload
type CreateStoreInput struct {
	Name    string `json:"name" validate:"required,max=50"` // Store name
	Address string `json:"address" validate:"max=255"`      // Store address
	Contact string `json:"contact" validate:"max=50"`       // Store phone
}

// RegisterEmployeeInput assigns a user to a store
type RegisterEmployeeInput struct {
	UserID  *uint  `json:"user_id" validate:"required"`  // Absent or null is missing; 0 is looked up
	StoreID *uint  `json:"store_id" validate:"required"` // Absent or null is missing; 0 is looked up
	Type    string `json:"type" validate:"required"`     // Role label
}

// Fields describes the request for logging
func (in RegisterEmployeeInput) Fields() logrus.Fields {
	fields := logrus.Fields{"type": in.Type} // Requested role label
	if in.UserID != nil {
		fields["user_id"] = *in.UserID // Requested user
	}
	if in.StoreID != nil {
		fields["store_id"] = *in.StoreID // Requested store
	}
	return fields
}

// UserCreated is returned by CreateUser
type UserCreated struct {
	ID    uint   `json:"user_id"` // User ID
	Name  string `json:"name"`    // Display name
	Email string `json:"email"`   // User email
}

// StoreCreated is returned by CreateStore
type StoreCreated struct {
	ID      uint   `json:"store_id"` // Store ID
	Name    string `json:"name"`     // Store name
	Address string `json:"address"`  // Store address
}

// EmployeeRegistered is returned by RegisterEmployee
type EmployeeRegistered struct {
	ID        uint   `json:"employee_id"`   // Employee ID
	Code      int    `json:"employee_code"` // 6-digit code
	UserName  string `json:"user_name"`     // User display name
	StoreName string `json:"store_name"`    // Store name
	Position  string `json:"position"`      // Role label
}

// UserSummary is one row of the user listing
type UserSummary struct {
	ID      uint   `json:"id"`      // User ID
	Name    string `json:"name"`    // Display name
	Email   string `json:"email"`   // User email
	Contact string `json:"contact"` // Contact phone
	Gender  string `json:"gender"`  // Gender label
	Address string `json:"address"` // Postal address
}

// StoreSummary is one row of the store listing
type StoreSummary struct {
	ID      uint   `json:"id"`      // Store ID
	Name    string `json:"name"`    // Store name
	Address string `json:"address"` // Store address
	Contact string `json:"contact"` // Store phone
}

// EmployeeSummary is one row of the employee listing
type EmployeeSummary struct {
	ID        uint   `json:"id"`            // Employee ID
	Code      int    `json:"employee_code"` // 6-digit code
	UserName  string `json:"user_name"`     // User display name
	StoreName string `json:"store_name"`    // Store name
	Position  string `json:"position"`      // Role label
	UserEmail string `json:"user_email"`    // User email
}
