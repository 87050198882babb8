package usecase

import (
	"wanderlist-backend/internal/bucket/domain"
	"wanderlist-backend/internal/bucket/dto"
)

// BucketUsecase defines the owner-scoped bucket-item operations. Every lookup
// reports an item that exists but belongs to someone else as not found, so a
// caller can never tell another user's items apart from absent ones.
type BucketUsecase interface {
	CreateItem(userID string, req *dto.CreateItemRequest) (*domain.BucketItem, error)
	GetUserItems(userID string) ([]*domain.BucketItem, error)
	GetItemByID(userID, itemID string) (*domain.BucketItem, error)
	UpdateItem(userID, itemID string, req *dto.UpdateItemRequest) (*domain.BucketItem, error)
	ToggleCompletion(userID, itemID string, completed bool) (*domain.BucketItem, error)
	DeleteItem(userID, itemID string) error
}
