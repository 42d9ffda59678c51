package service

import (
	"context"
	"fmt"

	"camera-rental-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendRentalCreated(ctx context.Context, toEmail string, rental *domain.Rental) error {
	subject := fmt.Sprintf("New rental: %s (%s - %s)", rental.CameraCode, rental.RentalDate, rental.ReturnDate)
	body := fmt.Sprintf(
		"A new rental was booked.\n\nCamera: %s (%s %s)\nCustomer: %s (%s)\nDates: %s to %s\nAgent: %s\n",
		rental.CameraCode, rental.Brand, rental.Model,
		rental.CustomerName, rental.CustomerPhone,
		rental.RentalDate, rental.ReturnDate,
		rental.Agent,
	)
	return s.send(toEmail, subject, body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, toEmail string, rental *domain.Rental) error {
	subject := fmt.Sprintf("Return due %s: %s", rental.ReturnDate, rental.CameraCode)
	body := fmt.Sprintf(
		"A rental is due back on %s.\n\nCamera: %s (%s %s)\nCustomer: %s (%s)\nAgent: %s\n",
		rental.ReturnDate,
		rental.CameraCode, rental.Brand, rental.Model,
		rental.CustomerName, rental.CustomerPhone,
		rental.Agent,
	)
	return s.send(toEmail, subject, body)
}

func (s *emailService) send(to, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
