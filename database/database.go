package database

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"carhire-api/config"
	"carhire-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Vehicle{},
		&models.Renter{},
		&models.Admin{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// SeedData creates the configured admin account and, when the fleet is empty,
// a few sample vehicles for development.
func SeedData(db *gorm.DB, cfg *config.Config) error {
	var adminCount int64
	db.Model(&models.Admin{}).Where("email = ?", cfg.AdminEmail).Count(&adminCount)

	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin := models.Admin{
			ID:       uuid.New().String(),
			Name:     cfg.AdminName,
			Email:    cfg.AdminEmail,
			Password: string(hashed),
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin account: %w", err)
		}
	}

	var vehicleCount int64
	db.Model(&models.Vehicle{}).Count(&vehicleCount)

	if vehicleCount > 0 {
		return nil
	}

	sampleVehicles := []models.Vehicle{
		{
			ID:           uuid.New().String(),
			Make:         "Toyota",
			ModelName:    "Axio",
			Year:         2019,
			Registration: "KDA 123A",
			Seats:        5,
			Transmission: models.TransmissionAutomatic,
			FuelType:     models.FuelTypePetrol,
			Color:        "Silver",
			DailyPrice:   4500,
			Status:       models.VehicleStatusAvailable,
		},
		{
			ID:           uuid.New().String(),
			Make:         "Mazda",
			ModelName:    "Demio",
			Year:         2018,
			Registration: "KDB 456B",
			Seats:        5,
			Transmission: models.TransmissionAutomatic,
			FuelType:     models.FuelTypePetrol,
			Color:        "Red",
			DailyPrice:   3500,
			Status:       models.VehicleStatusAvailable,
		},
		{
			ID:           uuid.New().String(),
			Make:         "Nissan",
			ModelName:    "X-Trail",
			Year:         2020,
			Registration: "KDC 789C",
			Seats:        7,
			Transmission: models.TransmissionAutomatic,
			FuelType:     models.FuelTypeHybrid,
			Color:        "White",
			DailyPrice:   8000,
			Status:       models.VehicleStatusMaintenance,
		},
	}

	for _, vehicle := range sampleVehicles {
		if err := db.Create(&vehicle).Error; err != nil {
			fmt.Printf("Warning: Could not create sample vehicle %s: %v\n", vehicle.Registration, err)
		}
	}

	return nil
}
