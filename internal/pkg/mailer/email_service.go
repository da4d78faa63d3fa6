// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOTP(toEmail, otp string) error
	SendConnectionRequest(toEmail, recipientName, senderName, postCity string) error
	SendConnectionAccepted(toEmail, recipientName, accepterName string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send '%s' to %s: %v\n", subject, toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] '%s' sent to %s\n", subject, toEmail)
	return nil
}

func (s *emailService) SendOTP(toEmail, otp string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to RoomBuddy!</h2>
			<p>Your verification code is:</p>
			<h1 style="color: #4CAF50; letter-spacing: 5px;">%s</h1>
			<p>This code will expire in 15 minutes.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, otp)

	return s.send(toEmail, "Your Verification Code", body)
}

func (s *emailService) SendConnectionRequest(toEmail, recipientName, senderName, postCity string) error {
	inboxLink := fmt.Sprintf("%s/requests", s.frontendURL)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p><b>%s</b> wants to connect about your roommate post in %s.</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View Request</a>
		</div>
	`, recipientName, senderName, postCity, inboxLink)

	return s.send(toEmail, "New Connection Request", body)
}

func (s *emailService) SendConnectionAccepted(toEmail, recipientName, accepterName string) error {
	buddiesLink := fmt.Sprintf("%s/buddies", s.frontendURL)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p><b>%s</b> accepted your connection request. You can now see their contact details.</p>
			<a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View Buddies</a>
		</div>
	`, recipientName, accepterName, buddiesLink)

	return s.send(toEmail, "Connection Accepted", body)
}
