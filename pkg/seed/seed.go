package seed

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"corpsite_backend/internal/model"
)

// SeedAdminUser creates the bootstrap administrator account when
// ADMIN_EMAIL/ADMIN_PASSWORD are set and the account does not exist yet.
func SeedAdminUser(db *gorm.DB) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := model.User{
		Email:    adminEmail,
		Password: string(hashedPassword),
		Name:     "Administrator",
		Role:     model.RoleAdmin,
	}

	result := db.Where(model.User{Email: adminEmail}).FirstOrCreate(&admin)
	if result.Error != nil {
		log.Printf("Error creating admin user %s: %v", adminEmail, result.Error)
		return
	}

	log.Println("Admin user seeded successfully!")
}
