package repository

import "wanderlist-backend/internal/bucket/domain"

// BucketItemRepository defines the interface for bucket-item persistence.
// FindByID returns (nil, nil) when no row matches.
type BucketItemRepository interface {
	Create(item *domain.BucketItem) error
	FindByID(id string) (*domain.BucketItem, error)
	// FindByUserID returns the owner's items, newest first.
	FindByUserID(userID string) ([]*domain.BucketItem, error)
	Update(item *domain.BucketItem) error
	Delete(id string) error
}
