package main

import (
	"os"

	"travel-backoffice-be/internal/config"
	"travel-backoffice-be/internal/entity"
	"travel-backoffice-be/internal/model"
	"travel-backoffice-be/pkg/access"
	"travel-backoffice-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Options{Driver: cfg.Database.Driver, DSN: cfg.Database.Connection})
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding superadmin...")
	if err := seedSuperAdmin(db); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding poster templates...")
	seedPosterTemplates(db)

	color.Green("Seeding completed!")
}

func seedSuperAdmin(db *gorm.DB) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		color.Yellow("SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD not set, skipping superadmin")
		return nil
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Superadmin '%s' already exists, skipping...", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Id:           uuid.New(),
		Username:     "superadmin",
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Super",
		LastName:     "Admin",
		Role:         string(access.RoleSuperAdmin),
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	color.Green("Created superadmin: %s", email)
	return nil
}

func seedPosterTemplates(db *gorm.DB) {
	for _, t := range []entity.PosterType{entity.PosterUmrah, entity.PosterHajj, entity.PosterRamadan} {
		name := string(t) + " Classic"

		var existing model.PosterTemplate
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			color.Yellow("Template '%s' already exists, skipping...", name)
			continue
		}

		tpl := model.PosterTemplate{
			Id:           uuid.New(),
			Name:         name,
			TemplateType: string(t),
			IsActive:     true,
		}
		if err := db.Create(&tpl).Error; err != nil {
			color.Red("Error creating template '%s': %v", name, err)
			continue
		}
		color.Green("Created template: %s", name)
	}
}
