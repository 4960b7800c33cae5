package jobs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"carhire-api/models"
)

func TestReleaseRevertsLapsedBookings(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Vehicle{}, &models.Renter{}))

	renter := models.Renter{
		ID:            uuid.New().String(),
		FirstName:     "Amina",
		LastName:      "Odhiambo",
		Phone:         "+254700000001",
		IDType:        models.IDTypeNationalID,
		IDNumber:      "12345678",
		LicenseNumber: "DL-998877",
		PickupDate:    time.Now().Add(-72 * time.Hour),
		ReturnDate:    time.Now().Add(-24 * time.Hour),
	}
	require.NoError(t, db.Create(&renter).Error)

	vehicle := models.Vehicle{
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
		Status:       models.VehicleStatusBooked,
		BookedByID:   &renter.ID,
	}
	require.NoError(t, db.Create(&vehicle).Error)

	job := NewRentalExpiryJob(db, time.Hour, zap.NewNop())
	job.release()

	var stored models.Vehicle
	require.NoError(t, db.First(&stored, "id = ?", vehicle.ID).Error)
	assert.Equal(t, models.VehicleStatusAvailable, stored.Status)
	assert.Nil(t, stored.BookedByID)
}
