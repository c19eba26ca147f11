package handler

import (
	"errors"
	"time"

	"prephub_backend/constants"
	"prephub_backend/database"
	"prephub_backend/helper"
	"prephub_backend/model"
	"prephub_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Signup(c *fiber.Ctx) error {
	input := c.Locals("input").(model.SignupInput)

	existing, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_TAKEN, errors.New("email already registered"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	role := constants.ROLE_STUDENT
	if input.Role != nil {
		role = *input.Role
	}

	user := model.User{
		Email:     input.Email,
		Password:  hash,
		Role:      role,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		IsActive:  true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.SendWelcomeEmail(user.Email)

	return utils.SuccessResponse(c, fiber.StatusCreated, user)
}

func Signin(c *fiber.Ctx) error {
	input := c.Locals("input").(model.SigninInput)

	user, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_EMAIL, errors.New("email not registered"))
	}

	if !helper.CheckPasswordHash(input.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match"))
	}

	if !user.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("account disabled"))
	}

	claim := model.TokenClaim{UserId: user.ID, Email: user.Email, Role: user.Role}

	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := helper.SaveRefreshToken(c.Context(), user.ID, refreshToken); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := time.Now()
	database.DB.Model(user).Update("last_login", now)

	return c.JSON(fiber.Map{
		"message": "signin success",
		"tokens": model.TokenData{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
		"user": fiber.Map{
			"id":               user.ID,
			"email":            user.Email,
			"role":             user.Role,
			"isApprovedLister": user.IsApprovedLister,
			"firstName":        user.FirstName,
			"lastName":         user.LastName,
			"profileImage":     user.ProfileImage,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	type refreshInput struct {
		RefreshToken string `json:"refreshToken"`
	}
	var input refreshInput
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, errors.New("refresh token required"))
	}

	token, err := helper.ParseToken(input.RefreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token claims", nil)
	}
	userIdFloat, ok := claims["userId"].(float64)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid userId in payload", nil)
	}
	userId := uint(userIdFloat)

	match, err := helper.CheckRefreshToken(c.Context(), userId, input.RefreshToken)
	if err != nil || !match {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token revoked", err)
	}

	user, err := helper.GetUserById(userId)
	if err != nil || user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, err)
	}

	claim := model.TokenClaim{UserId: user.ID, Email: user.Email, Role: user.Role}
	newAccessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	newRefreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := helper.SaveRefreshToken(c.Context(), user.ID, newRefreshToken); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	})
}

func Signout(c *fiber.Ctx) error {
	claim, user, _, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}
	if err := helper.DeleteRefreshToken(c.Context(), claim.UserId); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(fiber.Map{"message": "signout success"})
}

func Me(c *fiber.Ctx) error {
	_, user, _, _ := helper.GetInfoUserFromToken(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}
