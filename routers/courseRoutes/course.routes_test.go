package courseRoutes

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

type listEnvelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination struct {
		Page        int   `json:"page"`
		Limit       int   `json:"limit"`
		TotalItems  int64 `json:"totalItems"`
		TotalPages  int   `json:"totalPages"`
		HasNextPage bool  `json:"hasNextPage"`
		HasPrevPage bool  `json:"hasPrevPage"`
	} `json:"pagination"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a second pooled connection would see its own empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Lesson{},
		&models.Enrollment{},
		&models.Review{},
		&models.Quiz{},
		&models.Question{},
		&models.QuizAttempt{},
		&models.Certificate{},
	))

	app := fiber.New()
	SetupCourseRoutes(app, db)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) (*models.User, string) {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "hashed", Role: role}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return &user, token
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
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

func TestCourseListEnvelope(t *testing.T) {
	app, db := newTestApp(t)

	for i := 1; i <= 25; i++ {
		require.NoError(t, db.Create(&models.Course{
			Title:        fmt.Sprintf("Course %02d", i),
			InstructorID: 1,
			IsPublished:  true,
		}).Error)
	}
	// unpublished courses stay out of the listing
	require.NoError(t, db.Create(&models.Course{Title: "Draft", InstructorID: 1}).Error)

	resp, env := doJSON(t, app, http.MethodGet, "/course/list?page=2&limit=10", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Status)

	var list listEnvelope
	require.NoError(t, json.Unmarshal(env.Data, &list))

	assert.Equal(t, 2, list.Pagination.Page)
	assert.Equal(t, 10, list.Pagination.Limit)
	assert.Equal(t, int64(25), list.Pagination.TotalItems)
	assert.Equal(t, 3, list.Pagination.TotalPages)
	assert.True(t, list.Pagination.HasNextPage)
	assert.True(t, list.Pagination.HasPrevPage)

	var courses []models.Course
	require.NoError(t, json.Unmarshal(list.Data, &courses))
	assert.Len(t, courses, 10)
}

func TestCourseListRejectsNonPositiveParams(t *testing.T) {
	app, _ := newTestApp(t)

	for _, target := range []string{"/course/list?page=0", "/course/list?limit=0", "/course/list?page=-2"} {
		resp, env := doJSON(t, app, http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)
		assert.False(t, env.Status)
	}
}

func TestCourseListDefaultsNonNumericParams(t *testing.T) {
	app, db := newTestApp(t)

	require.NoError(t, db.Create(&models.Course{Title: "Only", InstructorID: 1, IsPublished: true}).Error)

	resp, env := doJSON(t, app, http.MethodGet, "/course/list?page=abc&limit=xyz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list listEnvelope
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Pagination.Page)
	assert.Equal(t, 10, list.Pagination.Limit)
}

func TestEnrollFlow(t *testing.T) {
	app, db := newTestApp(t)
	user, token := seedUser(t, db, "u1@example.com", "USER")

	course := models.Course{Title: "Go Basics", InstructorID: 1, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	target := fmt.Sprintf("/course/%d/enroll", course.ID)

	resp, env := doJSON(t, app, http.MethodPost, target, token, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Status)

	var got models.Course
	require.NoError(t, db.First(&got, course.ID).Error)
	assert.Equal(t, 1, got.EnrollmentCount)

	// second enrollment is a conflict and leaves the count untouched
	resp, env = doJSON(t, app, http.MethodPost, target, token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, env.Status)

	require.NoError(t, db.First(&got, course.ID).Error)
	assert.Equal(t, 1, got.EnrollmentCount)

	var refreshed models.User
	require.NoError(t, db.First(&refreshed, user.ID).Error)
	var enrolled []uint
	require.NoError(t, json.Unmarshal(refreshed.EnrolledCourses, &enrolled))
	assert.Equal(t, []uint{course.ID}, enrolled)
}

func TestEnrollRequiresAuth(t *testing.T) {
	app, db := newTestApp(t)

	course := models.Course{Title: "Go Basics", InstructorID: 1, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestReviewFlowUpdatesCourseRating(t *testing.T) {
	app, db := newTestApp(t)

	course := models.Course{Title: "Go Basics", InstructorID: 1, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	ratings := []int{5, 3, 4}
	for i, rating := range ratings {
		_, token := seedUser(t, db, fmt.Sprintf("u%d@example.com", i+1), "USER")
		resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/reviews", course.ID), token,
			fiber.Map{"rating": rating, "comment": "ok"})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var got models.Course
	require.NoError(t, db.First(&got, course.ID).Error)
	assert.InDelta(t, 4.0, got.Rating, 1e-9)
	assert.Equal(t, 3, got.RatingCount)

	resp, env := doJSON(t, app, http.MethodGet, fmt.Sprintf("/course/%d/reviews", course.ID), "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list listEnvelope
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, int64(3), list.Pagination.TotalItems)
}

func TestAddLessonMissingCourse(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "teacher@example.com", "INSTRUCTOR")

	resp, _ := doJSON(t, app, http.MethodPost, "/course/999/lessons", token,
		fiber.Map{"title": "Intro", "duration": 30})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var lessons int64
	require.NoError(t, db.Model(&models.Lesson{}).Count(&lessons).Error)
	assert.Equal(t, int64(0), lessons)
}

func TestAddLessonRequiresInstructorRole(t *testing.T) {
	app, db := newTestApp(t)
	_, token := seedUser(t, db, "student@example.com", "USER")

	course := models.Course{Title: "Go Basics", InstructorID: 1, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/lessons", course.ID), token,
		fiber.Map{"title": "Intro", "duration": 30})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestQuizFlow(t *testing.T) {
	app, db := newTestApp(t)
	_, teacherToken := seedUser(t, db, "teacher@example.com", "INSTRUCTOR")
	_, studentToken := seedUser(t, db, "student@example.com", "USER")

	course := models.Course{Title: "Go Basics", InstructorID: 1, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	resp, env := doJSON(t, app, http.MethodPost, fmt.Sprintf("/course/%d/quiz", course.ID), teacherToken, fiber.Map{
		"title": "Basics check",
		"questions": []fiber.Map{
			{"text": "Q1", "options": []string{"a", "b"}, "correct_index": 0},
			{"text": "Q2", "options": []string{"a", "b", "c"}, "correct_index": 2},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var quiz models.Quiz
	require.NoError(t, json.Unmarshal(env.Data, &quiz))

	resp, env = doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/course/%d/quiz/%d/submit", course.ID, quiz.ID), studentToken,
		fiber.Map{"answers": []int{0, 1}})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var attempt models.QuizAttempt
	require.NoError(t, json.Unmarshal(env.Data, &attempt))
	assert.Equal(t, 1, attempt.Score)
	assert.Equal(t, 2, attempt.Total)
}

func TestCourseDetailsNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/course/12345", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
