package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikalpis/scroll-app/handlers"
	"github.com/vikalpis/scroll-app/models"
	"github.com/vikalpis/scroll-app/routes"
	"github.com/vikalpis/scroll-app/service"
	"github.com/vikalpis/scroll-app/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type memUsers struct {
	byEmail map[string]*models.User
	nextID  int64
}

func (m *memUsers) Create(_ context.Context, user *models.User) error {
	if _, ok := m.byEmail[user.Email]; ok {
		return store.ErrDuplicate
	}
	m.nextID++
	user.ID = m.nextID
	m.byEmail[user.Email] = user
	return nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return user, nil
}

type memVideos struct {
	videos []models.Video
	nextID int64
}

func (m *memVideos) Create(_ context.Context, video *models.Video) error {
	if err := video.BeforeCreate(nil); err != nil {
		return err
	}
	m.nextID++
	video.ID = m.nextID
	video.CreatedAt = time.Unix(1700000000+m.nextID, 0)
	video.UpdatedAt = video.CreatedAt
	m.videos = append(m.videos, *video)
	return nil
}

func (m *memVideos) ListNewest(context.Context) ([]models.Video, error) {
	out := []models.Video{}
	for i := len(m.videos) - 1; i >= 0; i-- {
		out = append(out, m.videos[i])
	}
	return out, nil
}

func newTestRouter() *gin.Engine {
	sessions := service.NewJWTProvider("test-secret", time.Hour)
	h := &handlers.Handler{
		Auth:     service.NewAuth(&memUsers{byEmail: map[string]*models.User{}}, sessions),
		Catalog:  service.NewCatalog(&memVideos{}, nil, nil),
		Sessions: sessions,
	}
	return routes.InitRouter(h)
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
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

func register(t *testing.T, r *gin.Engine) string {
	t.Helper()
	creds := map[string]string{"email": "a@b.test", "password": "secret"}

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", creds)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":        "my first clip",
		"description":  "something short",
		"videoUrl":     "https://media.example.com/videos/1.mp4",
		"thumbnailUrl": "https://media.example.com/thumbnails/1.jpg",
	}
}

func TestRegisterConflict(t *testing.T) {
	r := newTestRouter()
	creds := map[string]string{"email": "a@b.test", "password": "secret"}

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", creds)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/register", "", creds)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterMissingFields(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", map[string]string{"email": "a@b.test"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPasswordIsGeneric(t *testing.T) {
	r := newTestRouter()
	register(t, r)

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@b.test", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	unknown := doJSON(r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "nobody@b.test", "password": "secret",
	})
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	// Same message either way: the response must not say which input was wrong.
	assert.Equal(t, unknown.Body.String(), w.Body.String())
}

func TestCreateVideoWithoutSession(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodPost, "/api/videos", "", validPayload())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/videos", "garbage-token", validPayload())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateVideoMissingFields(t *testing.T) {
	r := newTestRouter()
	token := register(t, r)

	payload := validPayload()
	delete(payload, "title")

	w := doJSON(r, http.MethodPost, "/api/videos", token, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title")
}

func TestCreateVideoAppliesDefaults(t *testing.T) {
	r := newTestRouter()
	token := register(t, r)

	w := doJSON(r, http.MethodPost, "/api/videos", token, validPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Video
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.True(t, created.Controls)
	assert.Equal(t, models.DefaultVideoHeight, created.Transformation.Height)
	assert.Equal(t, models.DefaultVideoWidth, created.Transformation.Width)
	assert.Equal(t, models.DefaultVideoQuality, created.Transformation.Quality)
}

func TestCreateVideoRejectsBadQuality(t *testing.T) {
	r := newTestRouter()
	token := register(t, r)

	payload := validPayload()
	payload["transformation"] = map[string]interface{}{"quality": 150}

	w := doJSON(r, http.MethodPost, "/api/videos", token, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListVideosEmptyIsArray(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, http.MethodGet, "/api/videos", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListVideosPublicAndNewestFirst(t *testing.T) {
	r := newTestRouter()
	token := register(t, r)

	for _, title := range []string{"first", "second"} {
		payload := validPayload()
		payload["title"] = title
		w := doJSON(r, http.MethodPost, "/api/videos", token, payload)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// No token: the feed is public.
	w := doJSON(r, http.MethodGet, "/api/videos", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Video
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "second", listed[0].Title)
	assert.Equal(t, "first", listed[1].Title)
}

func TestUploadMediaUnavailableWithoutStorage(t *testing.T) {
	r := newTestRouter()
	token := register(t, r)

	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
