package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"prephub_backend/database"
	"prephub_backend/helper"
	"prephub_backend/model"
	"prephub_backend/router"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupApp opens a fresh in-memory database named after the test and wires
// the full route table against it.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	database.Migrate(db)
	database.DB = db

	app := fiber.New()
	router.SetupRoutes(app)
	return app
}

func createUser(t *testing.T, email, role string, approved bool) (model.User, string) {
	t.Helper()

	hash, err := helper.HashPassword("secret123")
	require.NoError(t, err)

	user := model.User{
		Email:            email,
		Password:         hash,
		Role:             role,
		IsApprovedLister: approved,
		IsActive:         true,
	}
	require.NoError(t, database.DB.Create(&user).Error)

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		UserId: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	require.NoError(t, err)

	return user, token
}

func createListing(t *testing.T, ownerId uint, name string, price float64) model.Listing {
	t.Helper()

	listing := model.Listing{
		OwnerId: ownerId,
		Type:    "coaching",
		Name:    name,
		Slug:    helper.GenerateUniqueListingSlug(database.DB, name),
		Price:   price,
	}
	require.NoError(t, database.DB.Create(&listing).Error)
	return listing
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
