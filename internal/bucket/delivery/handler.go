package delivery

import (
	"net/http"

	authdelivery "wanderlist-backend/internal/auth/delivery"
	"wanderlist-backend/internal/bucket/dto"
	"wanderlist-backend/internal/bucket/usecase"
	"wanderlist-backend/pkg/apperr"
	"wanderlist-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BucketHandler handles bucket-item HTTP requests.
type BucketHandler struct {
	bucketUsecase usecase.BucketUsecase
}

func NewBucketHandler(bucketUsecase usecase.BucketUsecase) *BucketHandler {
	return &BucketHandler{
		bucketUsecase: bucketUsecase,
	}
}

// CreateItem handles POST /api/bucket
func (h *BucketHandler) CreateItem(c *gin.Context) {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.bucketUsecase.CreateItem(user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetMyItems handles GET /api/bucket/me
func (h *BucketHandler) GetMyItems(c *gin.Context) {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	items, err := h.bucketUsecase.GetUserItems(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetItem handles GET /api/bucket/item/:id
func (h *BucketHandler) GetItem(c *gin.Context) {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	item, err := h.bucketUsecase.GetItemByID(user.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateItem handles PUT /api/bucket/item/:id
func (h *BucketHandler) UpdateItem(c *gin.Context) {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.bucketUsecase.UpdateItem(user.ID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// ToggleCompletion handles PUT /api/bucket/item/:id/complete
func (h *BucketHandler) ToggleCompletion(c *gin.Context) {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req dto.ToggleCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.bucketUsecase.ToggleCompletion(user.ID, c.Param("id"), *req.Completed)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /api/bucket/item/:id
func (h *BucketHandler) DeleteItem(c *gin.Context) {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.bucketUsecase.DeleteItem(user.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item deleted successfully"})
}

func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.L().Error("bucket request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": apperr.ClientMessage(err)})
}
