package seeders

import (
	"clinicadmin_go/database"
	"clinicadmin_go/models"
	"clinicadmin_go/utils"
	"log"
	"os"
)

// Seed runs all seeders. Each one skips itself when its table already has
// rows, so a restart never duplicates data.
func Seed() {
	log.Println("Starting database seeding...")

	SeedBranches()
	SeedOwner()
	SeedCategories()
	SeedVatSetting()

	log.Println("Database seeding completed")
}

// SeedBranches seeds the initial clinic branches
func SeedBranches() {
	var count int64
	database.DB.Model(&models.Branch{}).Count(&count)
	if count > 0 {
		log.Println("Branches already seeded, skipping...")
		return
	}

	branches := []models.Branch{
		{
			NameEn:    "Main Branch",
			NameAr:    "الفرع الرئيسي",
			CityEn:    "Riyadh",
			CityAr:    "الرياض",
			Latitude:  24.7136,
			Longitude: 46.6753,
			Phone:     "+966-11-1234567",
			Active:    true,
		},
		{
			NameEn:    "North Branch",
			NameAr:    "الفرع الشمالي",
			CityEn:    "Riyadh",
			CityAr:    "الرياض",
			Latitude:  24.8247,
			Longitude: 46.6356,
			Phone:     "+966-11-1234568",
			Active:    true,
		},
	}

	for _, branch := range branches {
		if err := database.DB.Create(&branch).Error; err != nil {
			log.Printf("Failed to seed branch %s: %v", branch.NameEn, err)
		}
	}
	log.Printf("Seeded %d branches", len(branches))
}

// SeedOwner creates the initial owner account. The password comes from
// OWNER_PASSWORD, falling back to a development default.
func SeedOwner() {
	var count int64
	database.DB.Model(&models.AdminUser{}).Count(&count)
	if count > 0 {
		log.Println("Admin users already seeded, skipping...")
		return
	}

	password := os.Getenv("OWNER_PASSWORD")
	if password == "" {
		password = "changeme-owner"
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash owner password: %v", err)
		return
	}

	owner := models.AdminUser{
		Email:    "owner@clinic.local",
		Password: hashed,
		FullName: "Clinic Owner",
		Role:     "owner",
		Status:   "active",
	}
	if err := database.DB.Create(&owner).Error; err != nil {
		log.Printf("Failed to seed owner account: %v", err)
		return
	}
	log.Println("Seeded owner account owner@clinic.local")
}

// SeedCategories seeds the two specialty categories
func SeedCategories() {
	var count int64
	database.DB.Model(&models.Category{}).Count(&count)
	if count > 0 {
		log.Println("Categories already seeded, skipping...")
		return
	}

	categories := []models.Category{
		{Type: models.CategoryDentist, NameEn: "Dentistry", NameAr: "طب الأسنان"},
		{Type: models.CategoryDermatologist, NameEn: "Dermatology", NameAr: "الأمراض الجلدية"},
	}

	for _, category := range categories {
		if err := database.DB.Create(&category).Error; err != nil {
			log.Printf("Failed to seed category %s: %v", category.NameEn, err)
		}
	}
	log.Printf("Seeded %d categories", len(categories))
}

// SeedVatSetting creates the singleton VAT row at a zero rate
func SeedVatSetting() {
	var count int64
	database.DB.Model(&models.VatSetting{}).Count(&count)
	if count > 0 {
		return
	}

	if err := database.DB.Create(&models.VatSetting{Percentage: 0}).Error; err != nil {
		log.Printf("Failed to seed VAT setting: %v", err)
		return
	}
	log.Println("Seeded VAT setting at 0%")
}
