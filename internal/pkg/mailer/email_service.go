package mailer

import (
	"fmt"
	"html"

	"travel-backoffice-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOTP(toEmail, otp, purpose string) error
	SendWelcome(toEmail, username, invitedBy string) error
	SendContactNotification(toEmail string, contact ContactNotice) error
}

// ContactNotice is the part of an external submission quoted in the owner mail.
type ContactNotice struct {
	Name       string
	Email      string
	Phone      string
	Subject    string
	Message    string
	APIKeyName string
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	log         logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderName string, log logger.ILogger) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		log:         log,
	}
}

func (s *emailService) newMessage(toEmail, subject, body string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return m
}

func (s *emailService) send(kind, toEmail string, m *gomail.Message) error {
	if err := s.dialer.DialAndSend(m); err != nil {
		s.log.Error("MAILER", "failed to send "+kind, map[string]interface{}{"to": toEmail, "error": err.Error()})
		return err
	}
	s.log.Info("MAILER", kind+" sent", map[string]interface{}{"to": toEmail})
	return nil
}

func (s *emailService) SendOTP(toEmail, otp, purpose string) error {
	return s.send("otp", toEmail, s.newMessage(toEmail, "Your Verification Code", otpBody(otp, purpose)))
}

func (s *emailService) SendWelcome(toEmail, username, invitedBy string) error {
	return s.send("welcome", toEmail, s.newMessage(toEmail, "Your account has been created", welcomeBody(username, invitedBy)))
}

func (s *emailService) SendContactNotification(toEmail string, contact ContactNotice) error {
	subject := "New enquiry from " + contact.Name
	return s.send("contact notification", toEmail, s.newMessage(toEmail, subject, contactBody(contact)))
}

func otpBody(otp, purpose string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Verification code</h2>
			<p>Use this code to complete your %s request:</p>
			<h1 style="color: #4CAF50; letter-spacing: 5px;">%s</h1>
			<p>This code will expire in 10 minutes.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, html.EscapeString(purpose), html.EscapeString(otp))
}

func welcomeBody(username, invitedBy string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome aboard</h2>
			<p>%s created an account for you with username <strong>%s</strong>.</p>
			<p>Sign in with the password they shared with you and change it from your profile.</p>
		</div>
	`, html.EscapeString(invitedBy), html.EscapeString(username))
}

func contactBody(c ContactNotice) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New website enquiry</h2>
			<p><strong>Source:</strong> %s</p>
			<p><strong>Name:</strong> %s<br><strong>Email:</strong> %s<br><strong>Phone:</strong> %s</p>
			<p><strong>Subject:</strong> %s</p>
			<p>%s</p>
		</div>
	`,
		html.EscapeString(c.APIKeyName),
		html.EscapeString(c.Name),
		html.EscapeString(c.Email),
		html.EscapeString(c.Phone),
		html.EscapeString(c.Subject),
		html.EscapeString(c.Message),
	)
}
