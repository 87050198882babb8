package dto

// CreateItemRequest is the payload for creating a bucket-list item. The owner
// always comes from the authenticated context, never from the body.
type CreateItemRequest struct {
	PlaceName   string   `json:"placeName" binding:"required"`
	Description string   `json:"description"`
	TravelDate  *string  `json:"travelDate"` // RFC3339 or YYYY-MM-DD
	Tags        []string `json:"tags"`
	Notes       string   `json:"notes"`
	Images      []string `json:"images"`
}

// UpdateItemRequest carries a partial update. Only the fields listed here are
// mutable; nil means "leave unchanged". The item id, owner and timestamps can
// never be overwritten through a payload.
type UpdateItemRequest struct {
	PlaceName   *string   `json:"placeName"`
	Description *string   `json:"description"`
	TravelDate  *string   `json:"travelDate"` // empty string clears the date
	Tags        *[]string `json:"tags"`
	Completed   *bool     `json:"completed"`
	Notes       *string   `json:"notes"`
	Images      *[]string `json:"images"`
}

// ToggleCompletionRequest flips just the completion flag.
type ToggleCompletionRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}
