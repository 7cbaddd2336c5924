// Package service holds the business rules for users, stores and employees.
// Every operation receives its storage handle through the Service and runs
// writes inside an explicit transaction.
package service

import (
	"bungeoppang/internal/apperror" // Error taxonomy
	"errors"                        // Error inspection
	"fmt"                           // Message formatting
	"math/rand"                     // Employee code draws
	"reflect"                       // Struct tag lookup
	"strings"                       // Tag parsing

	"github.com/go-playground/validator/v10" // Struct validation
	"golang.org/x/crypto/bcrypt"             // Password hashing
	"gorm.io/gorm"                           // GORM ORM library
)

// DefaultMaxCodeAttempts bounds the employee code draw loop
const DefaultMaxCodeAttempts = 256

// Service runs the user, store and employee operations against one database handle
type Service struct {
	db              *gorm.DB            // Database handle
	validate        *validator.Validate // Input validator
	intn            func(n int) int     // Random source for code draws
	maxCodeAttempts int                 // Draws before allocation gives up
	hashCost        int                 // bcrypt cost for new passwords
}

// Option customizes a Service
type Option func(*Service)

// WithRandom replaces the source used to draw employee codes.
// intn must return a value in [0, n) and be safe for concurrent use.
func WithRandom(intn func(n int) int) Option {
	return func(s *Service) {
		if intn != nil {
			s.intn = intn
		}
	}
}

// WithMaxCodeAttempts sets how many codes are drawn before registration fails
func WithMaxCodeAttempts(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxCodeAttempts = n
		}
	}
}

// WithHashCost sets the bcrypt cost used for new passwords
func WithHashCost(cost int) Option {
	return func(s *Service) {
		s.hashCost = min(max(cost, bcrypt.MinCost), bcrypt.MaxCost) // Clamp into bcrypt's accepted range
	}
}

// New builds a Service over db
func New(db *gorm.DB, opts ...Option) (*Service, error) {
	if db == nil {
		return nil, errors.New("service: database handle is required")
	}
	s := &Service{
		db:              db,                     // Database handle
		validate:        newValidator(),         // Input validator
		intn:            rand.Intn,              // Goroutine-safe top-level generator
		maxCodeAttempts: DefaultMaxCodeAttempts, // Default draw bound
		hashCost:        bcrypt.DefaultCost,     // Default bcrypt cost
	}
	for _, opt := range opts {
		opt(s) // Apply option
	}
	return s, nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// check validates input and reports the first failing field
func (s *Service) check(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperror.Internal("failed to validate input", err) // Not a field failure
	}
	fe := fieldErrs[0] // First failing field
	switch fe.Tag() {
	case "required":
		return apperror.Validation("%s field is required", fe.Field())
	case "max":
		return apperror.Validation("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return apperror.Validation("%s is invalid", fe.Field())
	}
}

// classify keeps typed errors and wraps everything else as internal
func classify(err error, message string) error {
	if err == nil {
		return nil
	}
	if apperror.As(err) != nil {
		return err // Already classified
	}
	return apperror.Internal(message, err)
}

// lookupFailed maps a First() error to not-found or internal
func lookupFailed(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(what + " not found")
	}
	return apperror.Internal(fmt.Sprintf("failed to look up %s", what), err)
}
