package repository

import (
	"errors"
	"time"

	"wanderlist-backend/internal/bucket/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormBucketItemRepository implements BucketItemRepository using GORM
type gormBucketItemRepository struct {
	db *gorm.DB
}

// NewGormBucketItemRepository creates a GORM-based BucketItemRepository
func NewGormBucketItemRepository(db *gorm.DB) BucketItemRepository {
	return &gormBucketItemRepository{db: db}
}

func (r *gormBucketItemRepository) Create(item *domain.BucketItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	return r.db.Create(item).Error
}

func (r *gormBucketItemRepository) FindByID(id string) (*domain.BucketItem, error) {
	var item domain.BucketItem
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *gormBucketItemRepository) FindByUserID(userID string) ([]*domain.BucketItem, error) {
	var items []*domain.BucketItem
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *gormBucketItemRepository) Update(item *domain.BucketItem) error {
	item.UpdatedAt = time.Now()
	return r.db.Save(item).Error
}

func (r *gormBucketItemRepository) Delete(id string) error {
	return r.db.Delete(&domain.BucketItem{}, "id = ?", id).Error
}
