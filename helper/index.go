package helper

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"prephub_backend/config"
	"prephub_backend/constants"
	"prephub_backend/database"
	"prephub_backend/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// jwtSecret is resolved per call so a secret supplied via .env is picked up
// after config loads it.
func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GetUserById(id uint) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// IsListerRole reports whether role may publish listings.
func IsListerRole(role string) bool {
	for _, r := range constants.ListerRoles {
		if r == role {
			return true
		}
	}
	return false
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(accessTokenTTL).Unix()

	return token.SignedString(jwtSecret())
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["jti"] = uuid.NewString()
	claims["exp"] = time.Now().Add(refreshTokenTTL).Unix()

	return token.SignedString(jwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
}

// GetInfoUserFromToken resolves the caller from the parsed token placed in
// Locals by middleware.Protected. Returns the claim, the account row, and
// admin/lister flags. A zero claim means the account no longer exists.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, *model.User, bool, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, nil, false, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, nil, false, false
	}

	userIdFloat, ok := claims["userId"].(float64)
	if !ok {
		return model.TokenClaim{}, nil, false, false
	}
	email, _ := claims["email"].(string)

	user, err := GetUserById(uint(userIdFloat))
	if err != nil || user == nil {
		return model.TokenClaim{}, nil, false, false
	}

	claim := model.TokenClaim{
		UserId: user.ID,
		Email:  email,
		Role:   user.Role,
	}
	return claim, user, user.Role == constants.ROLE_ADMIN, IsListerRole(user.Role)
}

func refreshKey(userId uint) string {
	return fmt.Sprintf("refresh:%d", userId)
}

// SaveRefreshToken stores the active refresh token for a user so a signout
// or rotation invalidates older ones.
func SaveRefreshToken(ctx context.Context, userId uint, token string) error {
	return database.RDB.Set(ctx, refreshKey(userId), token, refreshTokenTTL).Err()
}

func CheckRefreshToken(ctx context.Context, userId uint, token string) (bool, error) {
	stored, err := database.RDB.Get(ctx, refreshKey(userId)).Result()
	if err != nil {
		return false, err
	}
	return stored == token, nil
}

func DeleteRefreshToken(ctx context.Context, userId uint) error {
	return database.RDB.Del(ctx, refreshKey(userId)).Err()
}
