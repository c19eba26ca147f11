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
)

func GetFaculty(c *fiber.Ctx) error {
	db := database.DB
	var faculty model.Faculties

	query := db.Order("id")
	if listingId := c.QueryInt("listingId", 0); listingId > 0 {
		query = query.Where("listing_id = ?", listingId)
	}

	if err := query.Find(&faculty).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"faculty": faculty,
		"total":   len(faculty),
	})
}

func GetFacultyById(c *fiber.Ctx) error {
	facultyId := c.Locals("inputId").(uint)

	var faculty model.Faculty
	if err := database.DB.First(&faculty, facultyId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.FACULTY_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, faculty)
}

// facultyListingOwnedBy loads the parent listing and checks ownership.
// Admins pass the check for any listing.
func facultyListingOwnedBy(listingId uint, user *model.User, isAdmin bool) (*model.Listing, int, string) {
	var listing model.Listing
	if err := database.DB.First(&listing, listingId).Error; err != nil {
		return nil, fiber.StatusNotFound, constants.LISTING_NOT_FOUND
	}
	if listing.OwnerId != user.ID && !isAdmin {
		return nil, fiber.StatusForbidden, constants.NOT_AUTHORIZED
	}
	return &listing, 0, ""
}

func CreateFaculty(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	input := c.Locals("input").(model.CreateFacultyInput)

	if _, status, key := facultyListingOwnedBy(input.ListingId, user, isAdmin); status != 0 {
		return utils.ErrorResponse(c, status, key, errors.New(key))
	}

	faculty := model.Faculty{
		ListingId: input.ListingId,
		Name:      input.Name,
		Subject:   input.Subject,
		ImageUrl:  input.ImageUrl,
	}

	if err := database.DB.Create(&faculty).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, faculty)
}

// CreateFacultyBulk inserts several members at once. All rows must target
// listings the caller owns; the insert is one transaction.
func CreateFacultyBulk(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	inputs := c.Locals("input").([]model.CreateFacultyInput)

	faculty := make(model.Faculties, 0, len(inputs))
	for _, input := range inputs {
		if _, status, key := facultyListingOwnedBy(input.ListingId, user, isAdmin); status != 0 {
			return utils.ErrorResponse(c, status, key, errors.New(key))
		}
		faculty = append(faculty, model.Faculty{
			ListingId: input.ListingId,
			Name:      input.Name,
			Subject:   input.Subject,
			ImageUrl:  input.ImageUrl,
		})
	}

	if err := database.DB.Create(&faculty).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"faculty": faculty,
		"total":   len(faculty),
	})
}

func EditFaculty(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	facultyId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.UpdateFacultyInput)

	var faculty model.Faculty
	if err := database.DB.First(&faculty, facultyId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.FACULTY_NOT_FOUND, err)
	}

	if _, status, key := facultyListingOwnedBy(faculty.ListingId, user, isAdmin); status != 0 {
		return utils.ErrorResponse(c, status, key, errors.New(key))
	}

	copier.CopyWithOption(&faculty, &input, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(&faculty).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, faculty)
}

func DeleteFaculty(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	facultyId := c.Locals("inputId").(uint)

	var faculty model.Faculty
	if err := database.DB.First(&faculty, facultyId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.FACULTY_NOT_FOUND, err)
	}

	if _, status, key := facultyListingOwnedBy(faculty.ListingId, user, isAdmin); status != 0 {
		return utils.ErrorResponse(c, status, key, errors.New(key))
	}

	if err := database.DB.Delete(&faculty).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func UploadFacultyImage(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	facultyId := c.Locals("inputId").(uint)

	var faculty model.Faculty
	if err := database.DB.First(&faculty, facultyId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.FACULTY_NOT_FOUND, err)
	}

	if _, status, key := facultyListingOwnedBy(faculty.ListingId, user, isAdmin); status != 0 {
		return utils.ErrorResponse(c, status, key, errors.New(key))
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	cld := helper.InitCloudinary()
	url, _, err := helper.UploadImage(c.Context(), cld, file, fmt.Sprintf("prephub/faculty/%d", faculty.ListingId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPLOAD_FAILED, err)
	}

	faculty.ImageUrl = &url
	if err := database.DB.Save(&faculty).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"imageUrl": url})
}
