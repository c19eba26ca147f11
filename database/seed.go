package database

import (
	"log"

	"prephub_backend/config"
	"prephub_backend/constants"
	"prephub_backend/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData creates the initial admin account and the settings row if the
// database is empty.
func SeedData(db *gorm.DB) {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" {
		adminEmail = "admin@prephub.local"
	}
	if adminPassword == "" {
		adminPassword = "changeme123"
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		log.Println("failed to hash admin password:", err)
		return
	}

	admin := model.User{
		Email:           adminEmail,
		Password:        string(bytes),
		Role:            constants.ROLE_ADMIN,
		IsActive:        true,
		IsVerifiedEmail: true,
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin account:", err)
	}

	settings := model.AdminSettings{DTO: model.DTO{ID: model.AdminSettingsID}}
	if err := db.Where(model.AdminSettings{DTO: model.DTO{ID: model.AdminSettingsID}}).
		FirstOrCreate(&settings).Error; err != nil {
		log.Println("failed to seed admin settings:", err)
	}
}
