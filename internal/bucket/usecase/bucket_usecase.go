package usecase

import (
	"strings"
	"time"

	"wanderlist-backend/internal/bucket/domain"
	"wanderlist-backend/internal/bucket/dto"
	"wanderlist-backend/internal/bucket/repository"
	"wanderlist-backend/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// bucketUsecase implements BucketUsecase
type bucketUsecase struct {
	itemRepo repository.BucketItemRepository
}

// NewBucketUsecase creates a new instance of bucketUsecase
func NewBucketUsecase(itemRepo repository.BucketItemRepository) BucketUsecase {
	return &bucketUsecase{itemRepo: itemRepo}
}

func (u *bucketUsecase) CreateItem(userID string, req *dto.CreateItemRequest) (*domain.BucketItem, error) {
	placeName := strings.TrimSpace(req.PlaceName)
	if placeName == "" {
		return nil, apperr.New(apperr.CodeInvalid, "placeName is required")
	}

	item := &domain.BucketItem{
		UserID:      userID,
		PlaceName:   placeName,
		Description: req.Description,
		Tags:        datatypes.NewJSONSlice(emptyIfNil(req.Tags)),
		Notes:       req.Notes,
		Images:      datatypes.NewJSONSlice(emptyIfNil(req.Images)),
		Completed:   false,
	}

	if req.TravelDate != nil && *req.TravelDate != "" {
		t, err := parseTravelDate(*req.TravelDate)
		if err != nil {
			return nil, apperr.New(apperr.CodeInvalid, "invalid travelDate format")
		}
		item.TravelDate = t
	}

	if err := u.itemRepo.Create(item); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to create item")
	}
	return item, nil
}

func (u *bucketUsecase) GetUserItems(userID string) ([]*domain.BucketItem, error) {
	items, err := u.itemRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to list items")
	}
	if items == nil {
		items = []*domain.BucketItem{}
	}
	return items, nil
}

func (u *bucketUsecase) GetItemByID(userID, itemID string) (*domain.BucketItem, error) {
	return u.getOwnedItem(userID, itemID)
}

func (u *bucketUsecase) UpdateItem(userID, itemID string, req *dto.UpdateItemRequest) (*domain.BucketItem, error) {
	item, err := u.getOwnedItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	if req.PlaceName != nil {
		placeName := strings.TrimSpace(*req.PlaceName)
		if placeName == "" {
			return nil, apperr.New(apperr.CodeInvalid, "placeName cannot be empty")
		}
		item.PlaceName = placeName
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.TravelDate != nil {
		if *req.TravelDate == "" {
			item.TravelDate = nil
		} else {
			t, err := parseTravelDate(*req.TravelDate)
			if err != nil {
				return nil, apperr.New(apperr.CodeInvalid, "invalid travelDate format")
			}
			item.TravelDate = t
		}
	}
	if req.Tags != nil {
		item.Tags = datatypes.NewJSONSlice(emptyIfNil(*req.Tags))
	}
	if req.Completed != nil {
		item.Completed = *req.Completed
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if req.Images != nil {
		item.Images = datatypes.NewJSONSlice(emptyIfNil(*req.Images))
	}

	if err := u.itemRepo.Update(item); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to update item")
	}
	return item, nil
}

// ToggleCompletion flips only the completed flag, skipping the field
// validation a full update runs. Repeated identical calls are no-ops.
func (u *bucketUsecase) ToggleCompletion(userID, itemID string, completed bool) (*domain.BucketItem, error) {
	item, err := u.getOwnedItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	item.Completed = completed
	if err := u.itemRepo.Update(item); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to update item")
	}
	return item, nil
}

func (u *bucketUsecase) DeleteItem(userID, itemID string) error {
	item, err := u.getOwnedItem(userID, itemID)
	if err != nil {
		return err
	}
	if err := u.itemRepo.Delete(item.ID); err != nil {
		return apperr.Wrap(err, apperr.CodeInternal, "failed to delete item")
	}
	return nil
}

// getOwnedItem resolves an item the requester owns. An item owned by another
// user is reported exactly like a missing one.
func (u *bucketUsecase) getOwnedItem(userID, itemID string) (*domain.BucketItem, error) {
	if _, err := uuid.Parse(itemID); err != nil {
		return nil, apperr.New(apperr.CodeInvalid, "invalid item ID format")
	}

	item, err := u.itemRepo.FindByID(itemID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "failed to look up item")
	}
	if item == nil || item.UserID != userID {
		return nil, apperr.New(apperr.CodeNotFound, "item not found")
	}
	return item, nil
}

// parseTravelDate accepts RFC3339 timestamps or plain calendar dates.
func parseTravelDate(s string) (*time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, &time.ParseError{Layout: time.RFC3339, Value: s}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
