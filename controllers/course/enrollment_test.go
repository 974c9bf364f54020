package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coursereg/database"
	"coursereg/models"
	"coursereg/models/course"
	"coursereg/repository"
	courseRoutes "coursereg/routers/courseRoutes"
	"coursereg/services/enrollment"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&course.Course{},
		&course.Instructor{},
		&course.Module{},
		&course.Enrollment{},
	))

	// Catalog handlers read through the global database instance.
	database.Database = database.DbInstance{Db: db}

	service := enrollment.New(
		db,
		repository.NewUserRepository(db),
		repository.NewCatalogRepository(db),
		repository.NewEnrollmentRepository(db),
		enrollment.RetryConfig{MaxAttempts: 3, Backoff: time.Millisecond},
	)

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app, service)
	return app, db
}

func seedCatalog(t *testing.T, db *gorm.DB, capacity uint) (*models.User, *course.Module) {
	t.Helper()

	user := &models.User{Name: "Student", Email: "student@example.com"}
	require.NoError(t, db.Create(user).Error)

	cr := &course.Course{Code: "CS101", Title: "Databases", Credits: 5}
	require.NoError(t, db.Create(cr).Error)
	inst := &course.Instructor{FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, db.Create(inst).Error)

	module := &course.Module{
		CourseID:     cr.ID,
		InstructorID: inst.ID,
		Code:         "DB1",
		Title:        "SQL Basics",
		Capacity:     capacity,
		Schedule:     "Mon 10:00",
		Location:     "Room 1",
	}
	require.NoError(t, db.Create(module).Error)
	return user, module
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestRegisterModuleEndpoint(t *testing.T) {
	app, db := setupApp(t)
	user, module := seedCatalog(t, db, 2)

	resp, payload := postJSON(t, app, fmt.Sprintf("/modules/%d/register", module.ID), fiber.Map{"userId": user.ID})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, payload["status"])

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(user.ID), data["user_id"])
	assert.Equal(t, float64(module.ID), data["module_id"])

	var got course.Module
	require.NoError(t, db.First(&got, module.ID).Error)
	assert.Equal(t, uint(1), got.Enrolled)
}

func TestRegisterModuleEndpointDuplicate(t *testing.T) {
	app, db := setupApp(t)
	user, module := seedCatalog(t, db, 2)

	resp, _ := postJSON(t, app, fmt.Sprintf("/modules/%d/register", module.ID), fiber.Map{"userId": user.ID})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, payload := postJSON(t, app, fmt.Sprintf("/modules/%d/register", module.ID), fiber.Map{"userId": user.ID})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "You are already enrolled in this module!", payload["message"])
}

func TestRegisterModuleEndpointFull(t *testing.T) {
	app, db := setupApp(t)
	first, module := seedCatalog(t, db, 1)

	second := &models.User{Name: "Other", Email: "other@example.com"}
	require.NoError(t, db.Create(second).Error)

	resp, _ := postJSON(t, app, fmt.Sprintf("/modules/%d/register", module.ID), fiber.Map{"userId": first.ID})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, payload := postJSON(t, app, fmt.Sprintf("/modules/%d/register", module.ID), fiber.Map{"userId": second.ID})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Module is full. Cannot enroll!", payload["message"])
}

func TestRegisterModuleEndpointNotFound(t *testing.T) {
	app, db := setupApp(t)
	user, module := seedCatalog(t, db, 1)

	resp, payload := postJSON(t, app, "/modules/9999/register", fiber.Map{"userId": user.ID})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Module not found!", payload["message"])

	resp, payload = postJSON(t, app, fmt.Sprintf("/modules/%d/register", module.ID), fiber.Map{"userId": 9999})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found!", payload["message"])
}

func TestRegisterModuleEndpointValidation(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := postJSON(t, app, "/modules/abc/register", fiber.Map{"userId": 1})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = postJSON(t, app, "/modules/1/register", fiber.Map{})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMyEnrollmentsEndpoint(t *testing.T) {
	app, db := setupApp(t)
	user, module := seedCatalog(t, db, 2)

	resp, _ := postJSON(t, app, fmt.Sprintf("/modules/%d/register", module.ID), fiber.Map{"userId": user.ID})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, payload := postJSON(t, app, "/my_enrollments", fiber.Map{"userId": user.ID})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	modules := data["modules"].([]interface{})
	require.Len(t, modules, 1)

	entry := modules[0].(map[string]interface{})
	assert.Equal(t, "DB1", entry["code"])
	instructor := entry["instructor"].(map[string]interface{})
	assert.Equal(t, "Ada", instructor["first_name"])
	assert.Equal(t, "Lovelace", instructor["last_name"])
}

func TestMyEnrollmentsUnknownUserEmpty(t *testing.T) {
	app, _ := setupApp(t)

	resp, payload := postJSON(t, app, "/my_enrollments", fiber.Map{"userId": 777})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	modules := data["modules"].([]interface{})
	assert.Empty(t, modules)
}

func TestGetModuleDetailsEndpoint(t *testing.T) {
	app, db := setupApp(t)
	_, module := seedCatalog(t, db, 2)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/modules/%d", module.ID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, "DB1", data["code"])
	assert.Equal(t, float64(2), data["capacity"])

	courseData := data["course"].(map[string]interface{})
	assert.Equal(t, "CS101", courseData["code"])
}

func TestGetCoursesEndpoint(t *testing.T) {
	app, db := setupApp(t)
	seedCatalog(t, db, 2)

	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	courses := payload["data"].([]interface{})
	require.Len(t, courses, 1)

	entry := courses[0].(map[string]interface{})
	assert.Equal(t, "CS101", entry["code"])
	modules := entry["modules"].([]interface{})
	require.Len(t, modules, 1)
}
