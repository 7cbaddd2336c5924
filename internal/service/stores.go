package service

import (
	"bungeoppang/internal/apperror" // Error taxonomy
	"bungeoppang/internal/domain"   // Domain models
	"context"                       // Request context

	"gorm.io/gorm" // GORM ORM library
)

// CreateStore stores a new active store
func (s *Service) CreateStore(ctx context.Context, in CreateStoreInput) (*StoreCreated, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	store := domain.Store{Name: in.Name, Address: in.Address, Contact: in.Contact, IsActive: true} // Create new store
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&store).Error
	})
	if err != nil {
		return nil, classify(err, "failed to create store")
	}
	return &StoreCreated{ID: store.ID, Name: store.Name, Address: store.Address}, nil
}

// ListStores returns every active store ordered by id
func (s *Service) ListStores(ctx context.Context) ([]StoreSummary, error) {
	var stores []domain.Store // Slice to hold stores
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&stores).Error; err != nil {
		return nil, apperror.Internal("failed to list stores", err)
	}
	out := make([]StoreSummary, len(stores)) // Empty listing encodes as []
	for i, st := range stores {
		out[i] = StoreSummary{ID: st.ID, Name: st.Name, Address: st.Address, Contact: st.Contact}
	}
	return out, nil
}
