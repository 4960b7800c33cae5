package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"carhire-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Vehicle{}, &models.Renter{}, &models.Admin{}))
	return db
}

func seedVehicle(t *testing.T, db *gorm.DB, status string) models.Vehicle {
	t.Helper()

	vehicle := models.Vehicle{
		ID:           uuid.New().String(),
		Make:         "Toyota",
		ModelName:    "Axio",
		Year:         2019,
		Registration: uuid.New().String()[:8],
		Seats:        5,
		Transmission: models.TransmissionAutomatic,
		FuelType:     models.FuelTypePetrol,
		Color:        "Silver",
		DailyPrice:   4500,
		Status:       status,
	}
	require.NoError(t, db.Create(&vehicle).Error)
	return vehicle
}

func testRenter(vehicleID string, pickup, ret time.Time) models.Renter {
	return models.Renter{
		ID:                uuid.New().String(),
		FirstName:         "Amina",
		LastName:          "Odhiambo",
		Phone:             "+254700000001",
		IDType:            models.IDTypeNationalID,
		IDNumber:          "12345678",
		LicenseNumber:     "DL-998877",
		PickupDate:        pickup,
		ReturnDate:        ret,
		SelectedVehicleID: vehicleID,
	}
}

func TestCreateWithBookingLinksVehicle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	vehicle := seedVehicle(t, db, models.VehicleStatusAvailable)

	renter := testRenter(vehicle.ID, time.Now().Add(24*time.Hour), time.Now().Add(72*time.Hour))
	require.NoError(t, repo.CreateWithBooking(&renter))

	var stored models.Vehicle
	require.NoError(t, db.First(&stored, "id = ?", vehicle.ID).Error)
	assert.Equal(t, models.VehicleStatusBooked, stored.Status)
	require.NotNil(t, stored.BookedByID)
	assert.Equal(t, renter.ID, *stored.BookedByID)
}

func TestCreateWithBookingNoVehicleSelected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)

	renter := testRenter("", time.Now().Add(24*time.Hour), time.Now().Add(72*time.Hour))
	require.NoError(t, repo.CreateWithBooking(&renter))

	var count int64
	db.Model(&models.Renter{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateWithBookingUnknownVehicleRollsBack(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)

	renter := testRenter("no-such-vehicle", time.Now().Add(24*time.Hour), time.Now().Add(72*time.Hour))
	err := repo.CreateWithBooking(&renter)
	require.ErrorIs(t, err, ErrVehicleNotFound)

	// All-or-nothing: the renter row must not survive the failed booking.
	var count int64
	db.Model(&models.Renter{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSelectedVehicle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)
	vehicle := seedVehicle(t, db, models.VehicleStatusAvailable)

	renter := testRenter(vehicle.ID, time.Now().Add(24*time.Hour), time.Now().Add(72*time.Hour))
	require.NoError(t, repo.CreateWithBooking(&renter))

	got, err := repo.SelectedVehicle(&renter)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, vehicle.ID, got.ID)

	none := testRenter("", time.Now().Add(24*time.Hour), time.Now().Add(72*time.Hour))
	got, err = repo.SelectedVehicle(&none)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReleaseExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookingRepository(db)

	lapsed := seedVehicle(t, db, models.VehicleStatusAvailable)
	active := seedVehicle(t, db, models.VehicleStatusAvailable)

	past := testRenter(lapsed.ID, time.Now().Add(-72*time.Hour), time.Now().Add(-24*time.Hour))
	require.NoError(t, db.Create(&past).Error)
	require.NoError(t, db.Model(&models.Vehicle{}).Where("id = ?", lapsed.ID).
		Updates(map[string]interface{}{"status": models.VehicleStatusBooked, "booked_by_id": past.ID}).Error)

	current := testRenter(active.ID, time.Now().Add(-24*time.Hour), time.Now().Add(48*time.Hour))
	require.NoError(t, db.Create(&current).Error)
	require.NoError(t, db.Model(&models.Vehicle{}).Where("id = ?", active.ID).
		Updates(map[string]interface{}{"status": models.VehicleStatusBooked, "booked_by_id": current.ID}).Error)

	released, err := repo.ReleaseExpired(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), released)

	var stored models.Vehicle
	require.NoError(t, db.First(&stored, "id = ?", lapsed.ID).Error)
	assert.Equal(t, models.VehicleStatusAvailable, stored.Status)
	assert.Nil(t, stored.BookedByID)

	stored = models.Vehicle{}
	require.NoError(t, db.First(&stored, "id = ?", active.ID).Error)
	assert.Equal(t, models.VehicleStatusBooked, stored.Status)
}
