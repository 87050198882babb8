package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	advisorUsecasePkg "wanderlist-backend/internal/advisor/usecase"
	authdomain "wanderlist-backend/internal/auth/domain"
	authUsecasePkg "wanderlist-backend/internal/auth/usecase"
	bucketdomain "wanderlist-backend/internal/bucket/domain"
	bucketUsecasePkg "wanderlist-backend/internal/bucket/usecase"
	"wanderlist-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories so the full HTTP surface can be exercised without a
// database.

type memUserRepo struct {
	byID    map[string]*authdomain.User
	byEmail map[string]*authdomain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*authdomain.User{}, byEmail: map[string]*authdomain.User{}}
}

func (r *memUserRepo) Create(user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	cp := *user
	r.byID[user.ID] = &cp
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *memUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByID(id string) (*authdomain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) Update(user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	cp := *user
	r.byID[user.ID] = &cp
	r.byEmail[user.Email] = &cp
	return nil
}

type memItemRepo struct {
	items map[string]*bucketdomain.BucketItem
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: map[string]*bucketdomain.BucketItem{}}
}

func (r *memItemRepo) Create(item *bucketdomain.BucketItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) FindByID(id string) (*bucketdomain.BucketItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	return &cp, nil
}

func (r *memItemRepo) FindByUserID(userID string) ([]*bucketdomain.BucketItem, error) {
	var out []*bucketdomain.BucketItem
	for _, item := range r.items {
		if item.UserID == userID {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memItemRepo) Update(item *bucketdomain.BucketItem) error {
	item.UpdatedAt = time.Now()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeAdvisor struct {
	lastPrompt string
	reply      string
	err        error
}

func (f *fakeAdvisor) Generate(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestServer(t *testing.T) (*gin.Engine, *fakeAdvisor) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret: "test-secret-key-at-least-32-chars-long",
		JWTExpiry: 24 * time.Hour,
	}

	authUc := authUsecasePkg.NewAuthUsecase(newMemUserRepo(), cfg)
	bucketUc := bucketUsecasePkg.NewBucketUsecase(newMemItemRepo())
	advisor := &fakeAdvisor{reply: "Day 1: arrive."}
	advisorUc := advisorUsecasePkg.NewAdvisorUsecase(advisor)

	r := gin.New()
	SetupRoutes(r, NewHandler(authUc, bucketUc, advisorUc, cfg))
	return r, advisor
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func registerUser(t *testing.T, r *gin.Engine, name, email string) (id, token string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{
		"name": name, "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode(t, w)
	return resp["id"].(string), resp["token"].(string)
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	r, _ := newTestServer(t)

	id, _ := registerUser(t, r, "Alice", "alice@example.com")

	// Second registration with the same email conflicts.
	w := doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{
		"name": "Impostor", "email": "alice@example.com", "password": "secret456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login with the original password still works, so the record was untouched.
	w = doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{
		"email": "alice@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	login := decode(t, w)
	assert.Equal(t, id, login["id"])
	assert.Equal(t, "alice@example.com", login["email"])

	// Profile with the fresh token.
	w = doJSON(t, r, http.MethodGet, "/api/users/profile", login["token"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode(t, w)
	assert.Equal(t, "Alice", profile["name"])
	assert.NotEmpty(t, profile["createdAt"])
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLogin_WrongPassword(t *testing.T) {
	r, _ := newTestServer(t)
	registerUser(t, r, "Alice", "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBucketOwnershipScenario(t *testing.T) {
	r, _ := newTestServer(t)

	aliceID, aliceToken := registerUser(t, r, "Alice", "alice@example.com")
	_, bobToken := registerUser(t, r, "Bob", "bob@example.com")

	// Alice creates an item.
	w := doJSON(t, r, http.MethodPost, "/api/bucket", aliceToken, gin.H{"placeName": "Paris"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	item := decode(t, w)
	assert.Equal(t, aliceID, item["userId"])
	assert.Equal(t, false, item["completed"])
	assert.Equal(t, []any{}, item["tags"])
	itemID := item["id"].(string)

	// Alice sees it, Bob does not.
	w = doJSON(t, r, http.MethodGet, "/api/bucket/me", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var aliceItems []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &aliceItems))
	require.Len(t, aliceItems, 1)

	w = doJSON(t, r, http.MethodGet, "/api/bucket/me", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	// Bob's fetch of Alice's item is a plain 404 with no item content.
	w = doJSON(t, r, http.MethodGet, "/api/bucket/item/"+itemID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "Paris")

	// Same for update and delete.
	w = doJSON(t, r, http.MethodPut, "/api/bucket/item/"+itemID, bobToken, gin.H{"placeName": "Hacked"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/bucket/item/"+itemID, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Alice's item is intact.
	w = doJSON(t, r, http.MethodGet, "/api/bucket/item/"+itemID, aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Paris", decode(t, w)["placeName"])
}

func TestBucketCompleteAndDelete(t *testing.T) {
	r, _ := newTestServer(t)
	_, token := registerUser(t, r, "Alice", "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/bucket", token, gin.H{
		"placeName": "Kyoto", "travelDate": "2025-04-01", "tags": []string{"culture", "food"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := decode(t, w)["id"].(string)

	// Round-trip preserves fields.
	w = doJSON(t, r, http.MethodGet, "/api/bucket/item/"+itemID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, "Kyoto", got["placeName"])
	assert.Equal(t, []any{"culture", "food"}, got["tags"])

	// Toggle twice with the same value; second call must not error.
	for i := 0; i < 2; i++ {
		w = doJSON(t, r, http.MethodPut, "/api/bucket/item/"+itemID+"/complete", token, gin.H{"completed": true})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, decode(t, w)["completed"])
	}

	// Delete then fetch.
	w = doJSON(t, r, http.MethodDelete, "/api/bucket/item/"+itemID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bucket/item/"+itemID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBucketRoutesRequireAuth(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/bucket", "", gin.H{"placeName": "Paris"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/bucket/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBucketItem_InvalidID(t *testing.T) {
	r, _ := newTestServer(t)
	_, token := registerUser(t, r, "Alice", "alice@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/bucket/item/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdvisoryEndpoints(t *testing.T) {
	r, advisor := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/ai/itinerary", "", gin.H{
		"destination": "Rome", "days": 3, "interests": []string{"history", "food"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Day 1: arrive.", decode(t, w)["itinerary"])
	assert.Equal(t, "Plan a 3-day itinerary for Rome, focusing on history, food. Provide a day-wise plan.", advisor.lastPrompt)

	w = doJSON(t, r, http.MethodPost, "/api/ai/best-time", "", gin.H{"destination": "Rome"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w), "bestTime")

	w = doJSON(t, r, http.MethodPost, "/api/ai/nearby", "", gin.H{"destination": "Rome"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w), "attractions")

	// Missing destination is a client error, not an upstream call.
	w = doJSON(t, r, http.MethodPost, "/api/ai/best-time", "", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
