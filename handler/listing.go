package handler

import (
	"errors"
	"fmt"

	"prephub_backend/constants"
	"prephub_backend/database"
	"prephub_backend/helper"
	"prephub_backend/model"
	"prephub_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetListings(c *fiber.Ctx) error {
	db := database.DB
	var listings model.Listings

	query := db.Preload("Faculty").Order("id")
	if listingType := c.Query("type"); listingType != "" {
		query = query.Where("type = ?", listingType)
	}
	if ownerId := c.QueryInt("ownerId", 0); ownerId > 0 {
		query = query.Where("owner_id = ?", ownerId)
	}

	if err := query.Find(&listings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"listings": listings,
		"total":    len(listings),
	})
}

func GetListingById(c *fiber.Ctx) error {
	listingId := c.Locals("inputId").(uint)

	var listing model.Listing
	if err := database.DB.Preload("Faculty").Preload("Owner").First(&listing, listingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LISTING_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, listing)
}

func GetListingBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var listing model.Listing
	if err := database.DB.Preload("Faculty").Preload("Owner").
		Where("slug = ?", slug).First(&listing).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LISTING_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, listing)
}

// CreateListing requires a lister role and admin approval.
func CreateListing(c *fiber.Ctx) error {
	_, user, _, isLister := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}
	if !isLister {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_LISTER, errors.New("only lister roles can create listings"))
	}
	if !user.IsApprovedLister {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.LISTER_NOT_APPROVED, errors.New("account not approved by admin"))
	}

	input := c.Locals("input").(model.CreateListingInput)

	listing := model.Listing{
		OwnerId:     user.ID,
		Type:        input.Type,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Location:    input.Location,
		Features:    input.Features,
	}
	listing.Slug = helper.GenerateUniqueListingSlug(database.DB, input.Name)

	if err := database.DB.Create(&listing).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, listing)
}

func EditListing(c *fiber.Ctx) error {
	_, user, _, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	listingId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.UpdateListingInput)

	var listing model.Listing
	if err := database.DB.First(&listing, listingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LISTING_NOT_FOUND, err)
	}

	if listing.OwnerId != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, errors.New("not the listing owner"))
	}

	copier.CopyWithOption(&listing, &input, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(&listing).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, listing)
}

// DeleteListing removes the listing together with its faculty and bookings
// in one transaction.
func DeleteListing(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	listingId := c.Locals("inputId").(uint)

	var listing model.Listing
	if err := database.DB.First(&listing, listingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LISTING_NOT_FOUND, err)
	}

	if listing.OwnerId != user.ID && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, errors.New("not the listing owner"))
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", listingId).Delete(&model.Faculty{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", listingId).Delete(&model.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&listing).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func UploadListingImage(c *fiber.Ctx) error {
	_, user, _, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	listingId := c.Locals("inputId").(uint)

	var listing model.Listing
	if err := database.DB.First(&listing, listingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LISTING_NOT_FOUND, err)
	}
	if listing.OwnerId != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHORIZED, errors.New("not the listing owner"))
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	cld := helper.InitCloudinary()
	url, _, err := helper.UploadImage(c.Context(), cld, file, fmt.Sprintf("prephub/listings/%d", listingId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPLOAD_FAILED, err)
	}

	listing.ImageUrl = &url
	if err := database.DB.Save(&listing).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"imageUrl": url})
}

// AdminGetAllListings lists every listing with owner info and booking counts.
func AdminGetAllListings(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil || !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	var listings model.Listings
	if err := db.Preload("Owner").Order("id").Find(&listings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	items := make([]model.AdminListingItem, 0, len(listings))
	for _, l := range listings {
		item := model.AdminListingItem{
			ID:       l.ID,
			Name:     l.Name,
			Type:     l.Type,
			Price:    l.Price,
			Location: l.Location,
		}
		if l.Owner != nil {
			item.OwnerEmail = l.Owner.Email
			item.OwnerName = ownerDisplayName(l.Owner)
		}
		db.Model(&model.Booking{}).Where("listing_id = ?", l.ID).Count(&item.TotalBookings)
		db.Model(&model.Booking{}).Where("listing_id = ? AND status = ?", l.ID, constants.BOOKING_PENDING).
			Count(&item.PendingBookings)
		items = append(items, item)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"listings": items,
		"total":    len(items),
	})
}

// AdminGetListingDetails joins the listing with its owner, faculty, all
// bookings and derived stats.
func AdminGetListingDetails(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil || !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	listingId := c.Locals("inputId").(uint)

	var listing model.Listing
	if err := database.DB.
		Preload("Owner").
		Preload("Faculty").
		Preload("Bookings").
		Preload("Bookings.User").
		First(&listing, listingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LISTING_NOT_FOUND, err)
	}

	var stats model.BookingStats
	enrolled := make([]model.EnrolledUser, 0, len(listing.Bookings))
	for _, b := range listing.Bookings {
		stats.TotalBookings++
		switch b.Status {
		case constants.BOOKING_PENDING:
			stats.PendingBookings++
		case constants.BOOKING_ACCEPTED:
			stats.AcceptedBookings++
			stats.TotalRevenue += b.Amount
		case constants.BOOKING_REJECTED:
			stats.RejectedBookings++
		}
		if b.User != nil {
			enrolled = append(enrolled, model.EnrolledUser{
				ID:            b.User.ID,
				Email:         b.User.Email,
				FirstName:     b.User.FirstName,
				LastName:      b.User.LastName,
				PhoneNumber:   b.User.PhoneNumber,
				BookingId:     b.ID,
				BookingStatus: b.Status,
				BookingAmount: b.Amount,
				EnrolledAt:    b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
				PaymentId:     b.PaymentId,
			})
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"listing":       listing,
		"stats":         stats,
		"enrolledUsers": enrolled,
	})
}

func AdminEditListing(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil || !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	listingId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.UpdateListingInput)

	var listing model.Listing
	if err := database.DB.First(&listing, listingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LISTING_NOT_FOUND, err)
	}

	copier.CopyWithOption(&listing, &input, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(&listing).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, listing)
}

func ownerDisplayName(u *model.User) string {
	first, last := "", ""
	if u.FirstName != nil {
		first = *u.FirstName
	}
	if u.LastName != nil {
		last = *u.LastName
	}
	name := first
	if last != "" {
		if name != "" {
			name += " "
		}
		name += last
	}
	if name == "" {
		return u.Email
	}
	return name
}
