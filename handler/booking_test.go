package handler_test

import (
	"net/http"
	"testing"

	"prephub_backend/constants"
	"prephub_backend/database"
	"prephub_backend/model"

	"github.com/stretchr/testify/require"
)

func TestCreateBookingComputesAmount(t *testing.T) {
	app := setupApp(t)

	owner, _ := createUser(t, "owner@test.local", constants.ROLE_COACHING, true)
	listing := createListing(t, owner.ID, "JEE Crash Course", 1000)
	_, studentToken := createUser(t, "student@test.local", constants.ROLE_STUDENT, false)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/bookings/", studentToken, map[string]any{
		"listingId": listing.ID,
		"quantity":  3,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	require.Equal(t, float64(3000), data["amount"])
	require.Equal(t, constants.BOOKING_PENDING, data["status"])
	require.Equal(t, constants.PAYMENT_PENDING, data["paymentStatus"])
	require.Equal(t, false, data["paymentVerified"])
}

func TestCreateBookingQuantityBounds(t *testing.T) {
	app := setupApp(t)

	owner, _ := createUser(t, "owner@test.local", constants.ROLE_LIBRARY, true)
	listing := createListing(t, owner.ID, "Study Hall", 500)
	_, studentToken := createUser(t, "student@test.local", constants.ROLE_STUDENT, false)

	for _, quantity := range []int{0, 6} {
		resp := doRequest(t, app, http.MethodPost, "/api/v1/bookings/", studentToken, map[string]any{
			"listingId": listing.ID,
			"quantity":  quantity,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}

	var count int64
	database.DB.Model(&model.Booking{}).Count(&count)
	require.Zero(t, count)
}

func TestCreateBookingMissingListing(t *testing.T) {
	app := setupApp(t)

	_, studentToken := createUser(t, "student@test.local", constants.ROLE_STUDENT, false)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/bookings/", studentToken, map[string]any{
		"listingId": 999,
		"quantity":  1,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVerifyPaymentVerifiedAcceptsBooking(t *testing.T) {
	app := setupApp(t)

	owner, _ := createUser(t, "owner@test.local", constants.ROLE_COACHING, true)
	listing := createListing(t, owner.ID, "NEET Batch", 1000)
	student, _ := createUser(t, "student@test.local", constants.ROLE_STUDENT, false)
	_, adminToken := createUser(t, "admin@test.local", constants.ROLE_ADMIN, false)

	booking := model.Booking{
		ListingId:     listing.ID,
		UserId:        student.ID,
		Quantity:      3,
		Amount:        3000,
		Status:        constants.BOOKING_PENDING,
		PaymentStatus: constants.PAYMENT_PENDING,
	}
	require.NoError(t, database.DB.Create(&booking).Error)

	resp := doRequest(t, app, http.MethodPatch,
		"/api/v1/bookings/admin/1/verify-payment", adminToken, map[string]any{
			"paymentStatus": "verified",
		})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated model.Booking
	require.NoError(t, database.DB.First(&updated, booking.ID).Error)
	require.Equal(t, constants.BOOKING_ACCEPTED, updated.Status)
	require.Equal(t, constants.PAYMENT_VERIFIED, updated.PaymentStatus)
	require.True(t, updated.PaymentVerified)
	require.NotNil(t, updated.PaymentVerifiedAt)
}

func TestVerifyPaymentFakeCancelsBooking(t *testing.T) {
	app := setupApp(t)

	owner, _ := createUser(t, "owner@test.local", constants.ROLE_HOSTEL, true)
	listing := createListing(t, owner.ID, "Boys Hostel", 2000)
	student, _ := createUser(t, "student@test.local", constants.ROLE_STUDENT, false)
	_, adminToken := createUser(t, "admin@test.local", constants.ROLE_ADMIN, false)

	booking := model.Booking{
		ListingId:     listing.ID,
		UserId:        student.ID,
		Quantity:      1,
		Amount:        2000,
		Status:        constants.BOOKING_PENDING,
		PaymentStatus: constants.PAYMENT_PENDING,
	}
	require.NoError(t, database.DB.Create(&booking).Error)

	resp := doRequest(t, app, http.MethodPatch,
		"/api/v1/bookings/admin/1/verify-payment", adminToken, map[string]any{
			"paymentStatus": "fake",
			"notes":         "screenshot does not match any transaction",
		})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated model.Booking
	require.NoError(t, database.DB.First(&updated, booking.ID).Error)
	require.Equal(t, constants.BOOKING_CANCELLED, updated.Status)
	require.Equal(t, constants.PAYMENT_FAKE, updated.PaymentStatus)
	require.False(t, updated.PaymentVerified)
	require.Nil(t, updated.PaymentVerifiedAt)
	require.NotNil(t, updated.PaymentNotes)
}

func TestVerifyPaymentPendingReopensReview(t *testing.T) {
	app := setupApp(t)

	owner, _ := createUser(t, "owner@test.local", constants.ROLE_TIFFIN, true)
	listing := createListing(t, owner.ID, "Monthly Tiffin", 1500)
	student, _ := createUser(t, "student@test.local", constants.ROLE_STUDENT, false)
	_, adminToken := createUser(t, "admin@test.local", constants.ROLE_ADMIN, false)

	booking := model.Booking{
		ListingId:     listing.ID,
		UserId:        student.ID,
		Quantity:      1,
		Amount:        1500,
		Status:        constants.BOOKING_ACCEPTED,
		PaymentStatus: constants.PAYMENT_VERIFIED,
		PaymentVerified: true,
	}
	require.NoError(t, database.DB.Create(&booking).Error)

	resp := doRequest(t, app, http.MethodPatch,
		"/api/v1/bookings/admin/1/verify-payment", adminToken, map[string]any{
			"paymentStatus": "pending",
		})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated model.Booking
	require.NoError(t, database.DB.First(&updated, booking.ID).Error)
	require.Equal(t, constants.BOOKING_PENDING, updated.Status)
	require.Equal(t, constants.PAYMENT_PENDING, updated.PaymentStatus)
	require.False(t, updated.PaymentVerified)
	require.Nil(t, updated.PaymentVerifiedAt)
}

func TestVerifyPaymentRejectsInvalidStatus(t *testing.T) {
	app := setupApp(t)

	_, adminToken := createUser(t, "admin@test.local", constants.ROLE_ADMIN, false)

	resp := doRequest(t, app, http.MethodPatch,
		"/api/v1/bookings/admin/1/verify-payment", adminToken, map[string]any{
			"paymentStatus": "maybe",
		})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVerifyPaymentRequiresAdmin(t *testing.T) {
	app := setupApp(t)

	_, studentToken := createUser(t, "student@test.local", constants.ROLE_STUDENT, false)

	resp := doRequest(t, app, http.MethodPatch,
		"/api/v1/bookings/admin/1/verify-payment", studentToken, map[string]any{
			"paymentStatus": "verified",
		})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUpdateBookingStatusOwnerOnly(t *testing.T) {
	app := setupApp(t)

	owner, ownerToken := createUser(t, "owner@test.local", constants.ROLE_COACHING, true)
	_, otherToken := createUser(t, "other@test.local", constants.ROLE_COACHING, true)
	listing := createListing(t, owner.ID, "Evening Batch", 800)
	student, _ := createUser(t, "student@test.local", constants.ROLE_STUDENT, false)

	booking := model.Booking{
		ListingId:     listing.ID,
		UserId:        student.ID,
		Quantity:      1,
		Amount:        800,
		Status:        constants.BOOKING_PENDING,
		PaymentStatus: constants.PAYMENT_PENDING,
	}
	require.NoError(t, database.DB.Create(&booking).Error)

	resp := doRequest(t, app, http.MethodPatch, "/api/v1/bookings/1/status", otherToken, map[string]any{
		"status": "accepted",
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPatch, "/api/v1/bookings/1/status", ownerToken, map[string]any{
		"status": "waitlist",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated model.Booking
	require.NoError(t, database.DB.First(&updated, booking.ID).Error)
	require.Equal(t, constants.BOOKING_WAITLIST, updated.Status)
}

func TestGetBookingsScopedToCaller(t *testing.T) {
	app := setupApp(t)

	owner, ownerToken := createUser(t, "owner@test.local", constants.ROLE_LIBRARY, true)
	listing := createListing(t, owner.ID, "Reading Room", 300)
	student, studentToken := createUser(t, "student@test.local", constants.ROLE_STUDENT, false)
	other, _ := createUser(t, "other@test.local", constants.ROLE_STUDENT, false)

	for _, userId := range []uint{student.ID, other.ID} {
		booking := model.Booking{
			ListingId:     listing.ID,
			UserId:        userId,
			Quantity:      1,
			Amount:        300,
			Status:        constants.BOOKING_PENDING,
			PaymentStatus: constants.PAYMENT_PENDING,
		}
		require.NoError(t, database.DB.Create(&booking).Error)
	}

	resp := doRequest(t, app, http.MethodGet, "/api/v1/bookings/", studentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	require.Equal(t, float64(1), data["total"])

	resp = doRequest(t, app, http.MethodGet, "/api/v1/bookings/", ownerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	data = body["data"].(map[string]any)
	require.Equal(t, float64(2), data["total"])
}

func TestUploadPaymentProofOwnerOnly(t *testing.T) {
	app := setupApp(t)

	owner, _ := createUser(t, "owner@test.local", constants.ROLE_COACHING, true)
	listing := createListing(t, owner.ID, "Morning Batch", 700)
	student, studentToken := createUser(t, "student@test.local", constants.ROLE_STUDENT, false)
	_, otherToken := createUser(t, "other@test.local", constants.ROLE_STUDENT, false)

	booking := model.Booking{
		ListingId:     listing.ID,
		UserId:        student.ID,
		Quantity:      1,
		Amount:        700,
		Status:        constants.BOOKING_PENDING,
		PaymentStatus: constants.PAYMENT_PENDING,
	}
	require.NoError(t, database.DB.Create(&booking).Error)

	proof := map[string]any{
		"paymentId":         "UPI-TXN-12345",
		"paymentScreenshot": "https://res.cloudinary.com/demo/payments/1.png",
	}

	resp := doRequest(t, app, http.MethodPost, "/api/v1/bookings/1/payment", otherToken, proof)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/bookings/1/payment", studentToken, proof)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated model.Booking
	require.NoError(t, database.DB.First(&updated, booking.ID).Error)
	require.NotNil(t, updated.PaymentId)
	require.Equal(t, "UPI-TXN-12345", *updated.PaymentId)
	require.NotNil(t, updated.PaymentScreenshot)
}
