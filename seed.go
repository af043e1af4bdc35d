package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/entity"
)

// seedDatabase bootstraps the singleton settings row and a default admin
// account so a fresh deployment is immediately usable.
func seedDatabase(db *gorm.DB) {
	var settingsCount int64
	if err := db.Model(&entity.Settings{}).Count(&settingsCount).Error; err == nil && settingsCount == 0 {
		s := entity.Settings{
			ProductionDay:     2, // Wednesday
			OrderCutoffDay:    6, // Sunday
			OrderCutoffHour:   23,
			OrderCutoffMinute: 59,
		}
		if err := db.Create(&s).Error; err != nil {
			log.Println("warning: failed to seed settings:", err)
		}
	}

	var userCount int64
	if err := db.Model(&entity.User{}).Count(&userCount).Error; err != nil || userCount > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Println("warning: failed to hash default admin password:", err)
		return
	}
	admin := entity.User{
		Username:       "admin",
		Email:          "admin@example.com",
		FullName:       "Administrator",
		HashedPassword: string(hash),
		Role:           entity.RoleAdmin,
		Active:         true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("warning: failed to seed admin user:", err)
		return
	}
	log.Println("seeded default admin user (username: admin) - change the password")
}
