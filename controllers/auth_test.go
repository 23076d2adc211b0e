package controllers_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/laborlink/laborlink-backend/controllers"
	"github.com/laborlink/laborlink-backend/db"
	"github.com/laborlink/laborlink-backend/models"
)

func setupAuthDB(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.LaborProfile{}, &models.Job{}))
	db.DB = gdb
}

func TestLogin_RequiresVerifiedAccount(t *testing.T) {
	setupAuthDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:     "Casey",
		Email:    "casey@example.com",
		Password: string(hash),
		Role:     models.RoleClient,
	}
	require.NoError(t, db.DB.Create(&user).Error)

	app := fiber.New()
	app.Post("/auth/login", controllers.Login)

	login := func() (int, map[string]interface{}) {
		req := httptest.NewRequest("POST", "/auth/login",
			strings.NewReader(`{"email":"casey@example.com","password":"hunter22"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return resp.StatusCode, body
	}

	// Correct credentials but the email was never verified
	status, _ := login()
	require.Equal(t, fiber.StatusForbidden, status)

	require.NoError(t, db.DB.Model(&user).Update("is_verified", true).Error)

	status, body := login()
	require.Equal(t, fiber.StatusOK, status)
	require.NotEmpty(t, body["token"])
	require.NotEmpty(t, body["refreshToken"])
}

func TestLogin_RejectsWrongPassword(t *testing.T) {
	setupAuthDB(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Name: "Casey", Email: "casey@example.com",
		Password: string(hash), Role: models.RoleClient, IsVerified: true,
	}
	require.NoError(t, db.DB.Create(&user).Error)

	app := fiber.New()
	app.Post("/auth/login", controllers.Login)

	req := httptest.NewRequest("POST", "/auth/login",
		strings.NewReader(`{"email":"casey@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
