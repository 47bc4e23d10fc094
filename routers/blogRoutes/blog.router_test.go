package blogRoutes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.BlogPost{}))

	app := fiber.New()
	SetupBlogRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestBlogListShowsOnlyPublishedPosts(t *testing.T) {
	app, db := newTestApp(t)

	for i := 1; i <= 12; i++ {
		require.NoError(t, db.Create(&models.BlogPost{
			Title:       fmt.Sprintf("Post %02d", i),
			Slug:        fmt.Sprintf("post-%02d", i),
			Content:     "body",
			AuthorID:    1,
			IsPublished: i%2 == 0,
		}).Error)
	}

	resp, env := doJSON(t, app, http.MethodGet, "/blog/list", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Data       []models.BlogPost `json:"data"`
		Pagination struct {
			TotalItems int64 `json:"totalItems"`
			TotalPages int   `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, int64(6), list.Pagination.TotalItems)
	assert.Equal(t, 1, list.Pagination.TotalPages)
	assert.Len(t, list.Data, 6)
}

func TestBlogPostBySlug(t *testing.T) {
	app, db := newTestApp(t)

	require.NoError(t, db.Create(&models.BlogPost{
		Title: "Hello", Slug: "hello", Content: "body", AuthorID: 1, IsPublished: true,
	}).Error)

	resp, env := doJSON(t, app, http.MethodGet, "/blog/hello", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var post models.BlogPost
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Equal(t, "Hello", post.Title)

	resp, _ = doJSON(t, app, http.MethodGet, "/blog/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBlogCreateRequiresRoleAndUniqueSlug(t *testing.T) {
	app, db := newTestApp(t)

	student := models.User{Name: "Student", Email: "s@example.com", Password: "x", Role: "USER"}
	require.NoError(t, db.Create(&student).Error)
	studentToken, err := middleware.GenerateJWT(student.ID, student.Name, student.Role, student.Email)
	require.NoError(t, err)

	author := models.User{Name: "Author", Email: "a@example.com", Password: "x", Role: "INSTRUCTOR"}
	require.NoError(t, db.Create(&author).Error)
	authorToken, err := middleware.GenerateJWT(author.ID, author.Name, author.Role, author.Email)
	require.NoError(t, err)

	post := fiber.Map{"title": "Hello", "slug": "hello", "content": "body", "is_published": true}

	resp, _ := doJSON(t, app, http.MethodPost, "/blog/", studentToken, post)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/blog/", authorToken, post)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// same slug again
	resp, env := doJSON(t, app, http.MethodPost, "/blog/", authorToken, post)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Status)
}
