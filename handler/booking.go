package handler

import (
	"errors"
	"fmt"
	"time"

	"prephub_backend/constants"
	"prephub_backend/database"
	"prephub_backend/helper"
	"prephub_backend/model"
	"prephub_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateBooking opens a booking on a listing. The amount is computed
// server-side from the listing price and requested quantity.
func CreateBooking(c *fiber.Ctx) error {
	_, user, _, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	input := c.Locals("input").(model.CreateBookingInput)

	if input.Quantity < constants.MIN_BOOKING_QUANTITY || input.Quantity > constants.MAX_BOOKING_QUANTITY {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_QUANTITY, errors.New("quantity out of range"))
	}

	var listing model.Listing
	if err := database.DB.First(&listing, input.ListingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LISTING_NOT_FOUND, err)
	}

	booking := model.Booking{
		ListingId:         listing.ID,
		UserId:            user.ID,
		Quantity:          input.Quantity,
		Amount:            listing.Price * float64(input.Quantity),
		Status:            constants.BOOKING_PENDING,
		PaymentStatus:     constants.PAYMENT_PENDING,
		PaymentId:         input.PaymentId,
		PaymentScreenshot: input.PaymentScreenshot,
	}

	if err := database.DB.Create(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

// UploadPaymentProof attaches the payer-supplied transaction id and
// screenshot URL to the caller's booking.
func UploadPaymentProof(c *fiber.Ctx) error {
	_, user, _, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	bookingId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.PaymentProofInput)

	var booking model.Booking
	if err := database.DB.First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}
	if booking.UserId != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, errors.New("not the booking owner"))
	}

	booking.PaymentId = &input.PaymentId
	booking.PaymentScreenshot = &input.PaymentScreenshot
	booking.PaymentStatus = constants.PAYMENT_PENDING
	booking.PaymentVerified = false
	booking.PaymentVerifiedAt = nil

	if err := database.DB.Save(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// UploadPaymentScreenshot takes a multipart image, pushes it to Cloudinary
// and records the URL on the booking.
func UploadPaymentScreenshot(c *fiber.Ctx) error {
	_, user, _, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	bookingId := c.Locals("inputId").(uint)

	var booking model.Booking
	if err := database.DB.First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}
	if booking.UserId != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, errors.New("not the booking owner"))
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	cld := helper.InitCloudinary()
	url, _, err := helper.UploadImage(c.Context(), cld, file, fmt.Sprintf("prephub/payments/%d", bookingId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPLOAD_FAILED, err)
	}

	booking.PaymentScreenshot = &url
	booking.PaymentStatus = constants.PAYMENT_PENDING
	booking.PaymentVerified = false
	booking.PaymentVerifiedAt = nil

	if err := database.DB.Save(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"paymentScreenshot": url})
}

// UpdateBookingStatus lets the listing owner accept, reject or waitlist a
// booking on their listing. The booking user is mailed about the move.
func UpdateBookingStatus(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	bookingId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.BookingStatusInput)

	var booking model.Booking
	if err := database.DB.Preload("Listing").Preload("User").First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	if booking.Listing == nil || (booking.Listing.OwnerId != user.ID && !isAdmin) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, errors.New("not the listing owner"))
	}

	booking.Status = input.Status
	if err := database.DB.Save(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if booking.User != nil {
		utils.SendBookingStatusEmail(booking.User.Email, utils.BookingStatusData{
			ListingName:   booking.Listing.Name,
			Quantity:      booking.Quantity,
			Amount:        booking.Amount,
			Status:        booking.Status,
			PaymentStatus: booking.PaymentStatus,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// GetBookings returns bookings scoped to the caller. Listers see bookings
// placed on their listings, everyone else sees their own.
func GetBookings(c *fiber.Ctx) error {
	_, user, _, isLister := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	db := database.DB
	query := db.Preload("Listing").Preload("User").Order("id")

	if isLister {
		query = query.Joins("JOIN listings ON listings.id = bookings.listing_id").
			Where("listings.owner_id = ?", user.ID)
	} else {
		query = query.Where("bookings.user_id = ?", user.ID)
	}
	if listingId := c.QueryInt("listingId", 0); listingId > 0 {
		query = query.Where("bookings.listing_id = ?", listingId)
	}

	var bookings model.Bookings
	if err := query.Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookings": bookings,
		"total":    len(bookings),
	})
}

// AdminGetAllBookings joins each booking with its user and listing.
func AdminGetAllBookings(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil || !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	query := db.Preload("Listing").Preload("User").Order("id")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if paymentStatus := c.Query("paymentStatus"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}

	var bookings model.Bookings
	if err := query.Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	details := make([]model.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		detail := model.BookingDetail{Booking: b}
		if b.User != nil {
			detail.UserEmail = b.User.Email
			detail.UserName = ownerDisplayName(b.User)
		}
		if b.Listing != nil {
			detail.ListingName = b.Listing.Name
			detail.ListingType = b.Listing.Type
		}
		details = append(details, detail)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookings": details,
		"total":    len(details),
	})
}

func GetBookingById(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	bookingId := c.Locals("inputId").(uint)

	var booking model.Booking
	if err := database.DB.Preload("Listing").First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	ownsListing := booking.Listing != nil && booking.Listing.OwnerId == user.ID
	if booking.UserId != user.ID && !ownsListing && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, errors.New("not the booking owner"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// EditBooking lets the booking user cancel their own booking.
func EditBooking(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	bookingId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.UpdateBookingInput)

	var booking model.Booking
	if err := database.DB.First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}
	if booking.UserId != user.ID && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, errors.New("not the booking owner"))
	}

	if input.Status != nil {
		booking.Status = *input.Status
	}

	if err := database.DB.Save(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func DeleteBooking(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	bookingId := c.Locals("inputId").(uint)

	var booking model.Booking
	if err := database.DB.First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}
	if booking.UserId != user.ID && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, errors.New("not the booking owner"))
	}

	if err := database.DB.Delete(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// VerifyPayment is the admin verdict on a payment proof. A verified payment
// also accepts the booking; a fake one cancels it; resetting to pending
// reopens the review.
func VerifyPayment(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil || !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	bookingId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.VerifyPaymentInput)

	var booking model.Booking
	if err := database.DB.Preload("Listing").Preload("User").First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	booking.PaymentStatus = input.PaymentStatus
	booking.PaymentNotes = input.Notes

	switch input.PaymentStatus {
	case constants.PAYMENT_VERIFIED:
		now := time.Now()
		booking.PaymentVerified = true
		booking.PaymentVerifiedAt = &now
		booking.Status = constants.BOOKING_ACCEPTED
	case constants.PAYMENT_FAKE:
		booking.PaymentVerified = false
		booking.PaymentVerifiedAt = nil
		booking.Status = constants.BOOKING_CANCELLED
	case constants.PAYMENT_PENDING:
		booking.PaymentVerified = false
		booking.PaymentVerifiedAt = nil
		booking.Status = constants.BOOKING_PENDING
	}

	if err := database.DB.Save(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if booking.User != nil && booking.Listing != nil {
		utils.SendBookingStatusEmail(booking.User.Email, utils.BookingStatusData{
			ListingName:   booking.Listing.Name,
			Quantity:      booking.Quantity,
			Amount:        booking.Amount,
			Status:        booking.Status,
			PaymentStatus: booking.PaymentStatus,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func loadAdminSettings(db *gorm.DB) (*model.AdminSettings, error) {
	settings := model.AdminSettings{DTO: model.DTO{ID: model.AdminSettingsID}}
	if err := db.Where("id = ?", model.AdminSettingsID).FirstOrCreate(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetPaymentInfo exposes the configured UPI id and QR image to any signed-in
// user about to pay for a booking.
func GetPaymentInfo(c *fiber.Ctx) error {
	settings, err := loadAdminSettings(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if settings.PaymentQrCode == nil && settings.PaymentUpiId == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SETTINGS_NOT_FOUND, errors.New("payment info not configured"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"paymentQrCode": settings.PaymentQrCode,
		"paymentUpiId":  settings.PaymentUpiId,
	})
}

// GetPaymentInfoQR renders a UPI deep link for the configured id as a PNG.
func GetPaymentInfoQR(c *fiber.Ctx) error {
	settings, err := loadAdminSettings(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if settings.PaymentUpiId == nil || *settings.PaymentUpiId == "" {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SETTINGS_NOT_FOUND, errors.New("payment info not configured"))
	}

	png, err := utils.GenerateQRCode(fmt.Sprintf("upi://pay?pa=%s", *settings.PaymentUpiId), 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func GetAdminSettings(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil || !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	settings, err := loadAdminSettings(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, settings)
}

// UpdateAdminSettings patches the singleton row, creating it on first use,
// and stamps who changed it.
func UpdateAdminSettings(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil || !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("input").(model.UpdateAdminSettingsInput)

	settings, err := loadAdminSettings(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.PaymentQrCode != nil {
		settings.PaymentQrCode = input.PaymentQrCode
	}
	if input.PaymentUpiId != nil {
		settings.PaymentUpiId = input.PaymentUpiId
	}
	settings.UpdatedBy = &user.ID

	if err := database.DB.Save(settings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, settings)
}
