package client_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/laborlink/laborlink-backend/controllers/client"
	"github.com/laborlink/laborlink-backend/db"
	"github.com/laborlink/laborlink-backend/models"
)

func profileApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	app.Put("/client/profile", client.UpdateProfile)
	return app
}

func putJSON(t *testing.T, app *fiber.App, path, payload string) int {
	t.Helper()

	req := httptest.NewRequest("PUT", path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestUpdateProfile_OnlyWhitelistedFieldsChange(t *testing.T) {
	setupDB(t)

	user := models.User{
		Name:     "Casey",
		Email:    "casey@example.com",
		Password: "hashed-secret",
		Role:     models.RoleClient,
	}
	require.NoError(t, db.DB.Create(&user).Error)

	app := profileApp(user.ID)

	payload := `{
		"name": "Casey Jordan",
		"address": "7 Oak Ave",
		"Password": "stolen",
		"IsVerified": true,
		"role": "labor",
		"no_such_column": "x"
	}`
	require.Equal(t, fiber.StatusOK, putJSON(t, app, "/client/profile", payload))

	var saved models.User
	require.NoError(t, db.DB.First(&saved, user.ID).Error)
	require.Equal(t, "Casey Jordan", saved.Name)
	require.Equal(t, "7 Oak Ave", saved.Address)
	require.Equal(t, "hashed-secret", saved.Password)
	require.Equal(t, models.RoleClient, saved.Role)
	require.False(t, saved.IsVerified)
}

func TestUpdateProfile_AllFieldsFilteredIsNoOp(t *testing.T) {
	setupDB(t)

	user := models.User{Name: "Casey", Email: "casey@example.com", Role: models.RoleClient}
	require.NoError(t, db.DB.Create(&user).Error)

	app := profileApp(user.ID)
	require.Equal(t, fiber.StatusOK, putJSON(t, app, "/client/profile", `{"Password":"stolen"}`))

	var saved models.User
	require.NoError(t, db.DB.First(&saved, user.ID).Error)
	require.Equal(t, "Casey", saved.Name)
}
