// File: /services/email_service.go
package services

import (
	"fmt"

	"automanager-api/config"
	"automanager-api/models"
	"gopkg.in/gomail.v2"
)

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

// SendSaleReceipt emails the buyer a confirmation of the completed sale.
func (es *EmailService) SendSaleReceipt(email, name string, vehicle *models.Vehicle) error {
	var salePrice int64
	if vehicle.SalePrice != nil {
		salePrice = *vehicle.SalePrice
	}

	body := fmt.Sprintf(`
		<h2>Purchase Confirmation</h2>
		<p>Hello %s,</p>
		<p>Thank you for your purchase! Here are the details of your vehicle:</p>
		<ul>
			<li><strong>Vehicle:</strong> %s %s</li>
			<li><strong>Plate:</strong> %s</li>
			<li><strong>Color:</strong> %s</li>
			<li><strong>Price:</strong> %s</li>
		</ul>
		<p>%s</p>
	`, name, vehicle.Brand, vehicle.Model, vehicle.Plate, vehicle.Color,
		FormatCents(salePrice), es.config.FromName)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(es.config.FromEmail, es.config.FromName))
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Purchase confirmation - %s %s", vehicle.Brand, vehicle.Model))
	m.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send sale receipt: %w", err)
	}

	return nil
}

// FormatCents renders an integer amount of cents as R$ with two decimals.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %d.%02d", sign, cents/100, cents%100)
}
