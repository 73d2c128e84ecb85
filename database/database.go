package database

import (
	"fmt"
	"log"

	config "github.com/medconnecter/med_connecter/configs"
	"github.com/medconnecter/med_connecter/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Language{},
		&models.Doctor{},
		&models.DoctorAvailability{},
		&models.BlockedDate{},
		&models.Appointment{},
		&models.Review{},
		&models.Notification{},
		&models.Document{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	password := string(hashedPassword)
	adminUser := models.User{
		FirstName:     config.Config("ADMIN_FIRST_NAME"),
		LastName:      config.Config("ADMIN_LAST_NAME"),
		Email:         adminEmail,
		Password:      &password,
		Role:          "admin",
		EmailVerified: true,
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

func SeedLanguages() {
	languages := []models.Language{
		{Code: "nl", Name: "Dutch"},
		{Code: "en", Name: "English"},
		{Code: "de", Name: "German"},
		{Code: "fr", Name: "French"},
		{Code: "es", Name: "Spanish"},
		{Code: "ar", Name: "Arabic"},
		{Code: "tr", Name: "Turkish"},
	}

	for _, language := range languages {
		var count int64
		DB.Model(&models.Language{}).Where("code = ?", language.Code).Count(&count)
		if count == 0 {
			if err := DB.Create(&language).Error; err != nil {
				log.Printf("Failed to seed language %s: %v", language.Code, err)
			}
		}
	}
	log.Println("✅ Languages seeded")
}
