package jobs

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"carhire-api/repositories"
)

// RentalExpiryJob periodically releases vehicles whose rental period has
// lapsed so they show up in the availability listing again.
type RentalExpiryJob struct {
	bookings *repositories.BookingRepository
	ticker   *time.Ticker
	done     chan bool
	log      *zap.Logger
}

func NewRentalExpiryJob(db *gorm.DB, interval time.Duration, log *zap.Logger) *RentalExpiryJob {
	return &RentalExpiryJob{
		bookings: repositories.NewBookingRepository(db),
		ticker:   time.NewTicker(interval),
		done:     make(chan bool),
		log:      log,
	}
}

// Start begins the release loop.
func (j *RentalExpiryJob) Start() {
	j.log.Info("rental expiry job started")

	go func() {
		// Run immediately on start
		j.release()

		for {
			select {
			case <-j.ticker.C:
				j.release()
			case <-j.done:
				j.log.Info("rental expiry job stopped")
				return
			}
		}
	}()
}

// Stop halts the release loop.
func (j *RentalExpiryJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *RentalExpiryJob) release() {
	released, err := j.bookings.ReleaseExpired(time.Now())
	if err != nil {
		j.log.Error("rental expiry release failed", zap.Error(err))
		return
	}

	if released > 0 {
		j.log.Info("released lapsed bookings", zap.Int64("vehicles", released))
	}
}
