package service

import (
	"bungeoppang/internal/apperror" // Error taxonomy
	"bungeoppang/internal/domain"   // Domain models

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// codeSpace is the number of distinct employee codes
const codeSpace = domain.MaxEmployeeCode - domain.MinEmployeeCode + 1

// drawCode returns a uniformly random code in the employee code range
func (s *Service) drawCode() int {
	return domain.MinEmployeeCode + s.intn(codeSpace)
}

// allocateCode draws codes until one is unused, giving up after maxCodeAttempts.
// The unique index on employees.code still guards the insert that follows.
func (s *Service) allocateCode(tx *gorm.DB) (int, error) {
	for attempt := 1; attempt <= s.maxCodeAttempts; attempt++ {
		code := s.drawCode() // Candidate code
		var count int64
		if err := tx.Model(&domain.Employee{}).Where("code = ?", code).Count(&count).Error; err != nil {
			return 0, apperror.Internal("failed to check employee code", err)
		}
		if count == 0 {
			return code, nil // Free code
		}
		logrus.WithFields(logrus.Fields{
			"code":    code,    // Colliding code
			"attempt": attempt, // Draw number
		}).Debug("Employee code collision")
	}
	logrus.WithField("attempts", s.maxCodeAttempts).Warn("Employee code space exhausted")
	return 0, apperror.Capacity("no free employee code found, try again later")
}
