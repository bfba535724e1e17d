package notification

import (
	"fmt"
	"net/smtp"

	"travelogue/config"
	"travelogue/models"
)

// SMTPEmailSender delivers notification emails over plain SMTP.
type SMTPEmailSender struct{}

// NewSMTPEmailSender creates an SMTP-backed Notifier.
func NewSMTPEmailSender() *SMTPEmailSender {
	return &SMTPEmailSender{}
}

func (s *SMTPEmailSender) SendBookingConfirmation(booking models.Booking, trip models.Trip) error {
	subject := fmt.Sprintf("Booking Confirmed - %s", trip.Title)
	return s.send(booking.Customer.Email, subject, confirmationBody(booking, trip))
}

func (s *SMTPEmailSender) SendBookingCancellation(booking models.Booking, trip models.Trip) error {
	subject := fmt.Sprintf("Booking Cancelled - %s", trip.Title)
	return s.send(booking.Customer.Email, subject, cancellationBody(booking, trip))
}

// send delivers a single HTML email using the configured SMTP account.
func (s *SMTPEmailSender) send(to, subject, htmlBody string) error {
	cfg := config.AppConfig
	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		return fmt.Errorf("email credentials not configured")
	}

	fromEmail := cfg.FromEmail
	if fromEmail == "" {
		fromEmail = cfg.SMTPUsername
	}

	auth := smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)

	message := []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n"+
			"%s\r\n",
		cfg.FromName, fromEmail, to, subject, htmlBody))

	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	if err := smtp.SendMail(addr, auth, fromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func confirmationBody(booking models.Booking, trip models.Trip) string {
	return fmt.Sprintf(`<html><body>
<h1>Booking Confirmed!</h1>
<p>Your adventure awaits.</p>
<h2>%s</h2>
<p>%s</p>
<table>
<tr><td>Booking ID</td><td><strong>%s</strong></td></tr>
<tr><td>Travel Date</td><td>%s</td></tr>
<tr><td>Travelers</td><td>%d</td></tr>
<tr><td>Duration</td><td>%s</td></tr>
<tr><td>Accommodation</td><td>%s</td></tr>
</table>
<p>Total Amount Paid: <strong>%s %d</strong></p>
</body></html>`,
		trip.Title, trip.Location,
		booking.BookingID,
		booking.StartDate.Format("Monday, January 2, 2006"),
		booking.Travelers,
		trip.Duration,
		booking.Accommodation,
		booking.Currency, booking.TotalPrice)
}

func cancellationBody(booking models.Booking, trip models.Trip) string {
	return fmt.Sprintf(`<html><body>
<h1>Booking Cancelled</h1>
<p>Your booking <strong>%s</strong> for <strong>%s</strong> has been cancelled.</p>
<p>A refund of %s %d will be processed within 5-7 business days.</p>
</body></html>`,
		booking.BookingID, trip.Title,
		booking.Currency, booking.TotalPrice)
}
