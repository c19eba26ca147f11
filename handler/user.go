package handler

import (
	"errors"
	"fmt"
	"strings"

	"prephub_backend/constants"
	"prephub_backend/database"
	"prephub_backend/helper"
	"prephub_backend/model"
	"prephub_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetUsers(c *fiber.Ctx) error {
	_, user, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if user == nil || !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	var users model.Users
	query := db.Model(&model.User{}).Order("id")

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(email) LIKE ?", like)
	}

	var totalCount int64
	query.Count(&totalCount)

	limit := c.QueryInt("limit", 0)
	page := c.QueryInt("page", 0)
	if limit > 0 {
		query = utils.ApplyPagination(query, &limit, &page)
	}

	if err := query.Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       users,
		TotalCount: totalCount,
	})
}

// GetUserById returns a user with their bookings and booking stats. Admin only.
func GetUserById(c *fiber.Ctx) error {
	_, caller, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if caller == nil || !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	userId := c.Locals("inputId").(uint)
	db := database.DB

	var user model.User
	if err := db.Preload("Listings").First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
	}

	var bookings model.Bookings
	db.Preload("Listing").Where("user_id = ?", userId).Order("created_at DESC").Find(&bookings)

	var totalSpent float64
	var acceptedCount int64
	for _, b := range bookings {
		if b.Status == constants.BOOKING_ACCEPTED {
			totalSpent += b.Amount
			acceptedCount++
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"user":     user,
		"bookings": bookings,
		"stats": fiber.Map{
			"totalBookings":    len(bookings),
			"acceptedBookings": acceptedCount,
			"totalSpent":       totalSpent,
		},
	})
}

func UpdateProfile(c *fiber.Ctx) error {
	_, user, _, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	input := c.Locals("input").(model.UpdateProfileInput)
	copier.CopyWithOption(user, &input, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func UploadProfileImage(c *fiber.Ctx) error {
	_, user, _, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	cld := helper.InitCloudinary()
	url, _, err := helper.UploadImage(c.Context(), cld, file, fmt.Sprintf("prephub/users/%d", user.ID))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.UPLOAD_FAILED, err)
	}

	user.ProfileImage = &url
	if err := database.DB.Save(user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"imageUrl": url})
}

// ApproveLister flips the flag that gates listing creation. Admin only.
func ApproveLister(c *fiber.Ctx) error {
	_, caller, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if caller == nil || !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	userId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.ApproveListerInput)

	var user model.User
	if err := database.DB.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
	}

	if !helper.IsListerRole(user.Role) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NOT_LISTER, errors.New("user has no lister role"))
	}

	user.IsApprovedLister = input.IsApprovedLister
	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func UpdateUserRole(c *fiber.Ctx) error {
	_, caller, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if caller == nil || !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	userId := c.Locals("inputId").(uint)
	input := c.Locals("input").(model.UpdateRoleInput)

	var user model.User
	if err := database.DB.First(&user, userId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.USER_NOT_FOUND, err)
	}

	user.Role = input.Role
	if !helper.IsListerRole(user.Role) {
		user.IsApprovedLister = false
	}
	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}
