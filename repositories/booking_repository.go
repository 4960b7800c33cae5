package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"carhire-api/models"
)

// ErrVehicleNotFound is returned when a submission references a vehicle id
// that does not exist. The whole booking rolls back.
var ErrVehicleNotFound = errors.New("selected vehicle not found")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateWithBooking persists the renter and, when a vehicle was selected,
// marks that vehicle Booked and links it back to the renter. Both writes run
// in one transaction so a booking is all-or-nothing.
func (r *BookingRepository) CreateWithBooking(renter *models.Renter) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(renter).Error; err != nil {
			return err
		}

		if renter.SelectedVehicleID == "" {
			return nil
		}

		var vehicle models.Vehicle
		if err := tx.First(&vehicle, "id = ?", renter.SelectedVehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVehicleNotFound
			}
			return err
		}

		return tx.Model(&vehicle).Updates(map[string]interface{}{
			"status":       models.VehicleStatusBooked,
			"booked_by_id": renter.ID,
		}).Error
	})
}

// SelectedVehicle loads the vehicle a renter booked, or nil when none was
// selected.
func (r *BookingRepository) SelectedVehicle(renter *models.Renter) (*models.Vehicle, error) {
	if renter.SelectedVehicleID == "" {
		return nil, nil
	}

	var vehicle models.Vehicle
	if err := r.db.First(&vehicle, "id = ?", renter.SelectedVehicleID).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// ReleaseExpired reverts Booked vehicles whose booking renter's return date
// has passed. Returns the number of vehicles released.
func (r *BookingRepository) ReleaseExpired(now time.Time) (int64, error) {
	expired := r.db.Model(&models.Renter{}).
		Select("id").
		Where("return_date < ?", now)

	result := r.db.Model(&models.Vehicle{}).
		Where("status = ? AND booked_by_id IN (?)", models.VehicleStatusBooked, expired).
		Updates(map[string]interface{}{
			"status":       models.VehicleStatusAvailable,
			"booked_by_id": nil,
		})

	return result.RowsAffected, result.Error
}
