package domain

import (
	"time"

	"gorm.io/datatypes"
)

// BucketItem is a single entry on a user's travel bucket list. The owner is
// fixed at creation time and is the only user allowed to see or change it.
type BucketItem struct {
	ID          string                      `json:"id" gorm:"primaryKey"`
	UserID      string                      `json:"userId" gorm:"index;not null"`
	PlaceName   string                      `json:"placeName" gorm:"not null"`
	Description string                      `json:"description,omitempty"`
	TravelDate  *time.Time                  `json:"travelDate,omitempty"`
	Tags        datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb"`
	Completed   bool                        `json:"completed" gorm:"default:false"`
	Notes       string                      `json:"notes,omitempty" gorm:"type:text"`
	Images      datatypes.JSONSlice[string] `json:"images" gorm:"type:jsonb"` // URLs or data URIs
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}
