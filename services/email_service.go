package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"carhire-api/config"
	"carhire-api/models"
)

// EmailService sends booking confirmations. Sending is always best-effort:
// the workflow logs failures and moves on.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// SendBookingConfirmation emails the renter a summary of their submission.
// vehicle may be nil when no vehicle was selected.
func (es *EmailService) SendBookingConfirmation(renter *models.Renter, vehicle *models.Vehicle) error {
	if renter.Email == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", es.config.FromEmail, es.config.FromName)
	m.SetHeader("To", renter.Email)
	m.SetHeader("Subject", "Your rental booking is confirmed")
	m.SetBody("text/html", es.buildConfirmationBody(renter, vehicle))

	return es.dialer.DialAndSend(m)
}

func (es *EmailService) buildConfirmationBody(renter *models.Renter, vehicle *models.Vehicle) string {
	name := renter.OrganizationName
	if !renter.IsCorporate {
		name = fmt.Sprintf("%s %s", renter.FirstName, renter.LastName)
	}

	vehicleLine := ""
	if vehicle != nil {
		vehicleLine = fmt.Sprintf("<p>Vehicle: %s %s (%d) — %s</p>",
			vehicle.Make, vehicle.ModelName, vehicle.Year, vehicle.Registration)
	}

	return fmt.Sprintf(`
		<h2>Booking received</h2>
		<p>Hello %s,</p>
		<p>Thank you for registering with %s. Your details have been received.</p>
		%s
		<p>Pickup: %s<br>Return: %s</p>
		<p>We will contact you on %s if anything else is needed.</p>
	`,
		name,
		es.config.FromName,
		vehicleLine,
		renter.PickupDate.Format("Mon, 02 Jan 2006 15:04"),
		renter.ReturnDate.Format("Mon, 02 Jan 2006 15:04"),
		renter.Phone,
	)
}
