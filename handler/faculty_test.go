package handler_test

import (
	"net/http"
	"testing"

	"prephub_backend/constants"
	"prephub_backend/database"
	"prephub_backend/model"

	"github.com/stretchr/testify/require"
)

func TestCreateFacultyRequiresListingOwnership(t *testing.T) {
	app := setupApp(t)

	owner, ownerToken := createUser(t, "owner@test.local", constants.ROLE_COACHING, true)
	_, otherToken := createUser(t, "other@test.local", constants.ROLE_COACHING, true)
	listing := createListing(t, owner.ID, "Crash Course", 1000)

	input := map[string]any{
		"listingId": listing.ID,
		"name":      "Dr. Verma",
		"subject":   "Chemistry",
	}

	resp := doRequest(t, app, http.MethodPost, "/api/v1/faculty/", otherToken, input)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/faculty/", ownerToken, input)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	database.DB.Model(&model.Faculty{}).Count(&count)
	require.Equal(t, int64(1), count)
}

func TestCreateFacultyMissingListing(t *testing.T) {
	app := setupApp(t)

	_, ownerToken := createUser(t, "owner@test.local", constants.ROLE_COACHING, true)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/faculty/", ownerToken, map[string]any{
		"listingId": 42,
		"name":      "Dr. Nobody",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateFacultyBulk(t *testing.T) {
	app := setupApp(t)

	owner, ownerToken := createUser(t, "owner@test.local", constants.ROLE_COACHING, true)
	listing := createListing(t, owner.ID, "Star Batch", 1200)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/faculty/create-bulk", ownerToken, []map[string]any{
		{"listingId": listing.ID, "name": "Prof. A", "subject": "Physics"},
		{"listingId": listing.ID, "name": "Prof. B", "subject": "Maths"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	database.DB.Model(&model.Faculty{}).Where("listing_id = ?", listing.ID).Count(&count)
	require.Equal(t, int64(2), count)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/faculty/create-bulk", ownerToken, []map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFacultyListFilterByListing(t *testing.T) {
	app := setupApp(t)

	owner, _ := createUser(t, "owner@test.local", constants.ROLE_COACHING, true)
	first := createListing(t, owner.ID, "Batch One", 500)
	second := createListing(t, owner.ID, "Batch Two", 600)

	require.NoError(t, database.DB.Create(&model.Faculty{ListingId: first.ID, Name: "Prof. X"}).Error)
	require.NoError(t, database.DB.Create(&model.Faculty{ListingId: second.ID, Name: "Prof. Y"}).Error)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/faculty/?listingId=2", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	require.Equal(t, float64(1), data["total"])
}

func TestEditAndDeleteFaculty(t *testing.T) {
	app := setupApp(t)

	owner, ownerToken := createUser(t, "owner@test.local", constants.ROLE_COACHING, true)
	listing := createListing(t, owner.ID, "Main Batch", 900)

	faculty := model.Faculty{ListingId: listing.ID, Name: "Prof. Old"}
	require.NoError(t, database.DB.Create(&faculty).Error)

	resp := doRequest(t, app, http.MethodPut, "/api/v1/faculty/1", ownerToken, map[string]any{
		"name": "Prof. New",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated model.Faculty
	require.NoError(t, database.DB.First(&updated, faculty.ID).Error)
	require.Equal(t, "Prof. New", updated.Name)

	resp = doRequest(t, app, http.MethodDelete, "/api/v1/faculty/1", ownerToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var count int64
	database.DB.Model(&model.Faculty{}).Count(&count)
	require.Zero(t, count)
}
