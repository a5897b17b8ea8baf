package service

import (
	"fmt"
	"html"
	"strings"

	"github.com/anatolianspine/clinic-api/internal/config"
	"gopkg.in/gomail.v2"
)

// ContactMessage is a validated contact form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// AppointmentRequest is a validated appointment form submission.
type AppointmentRequest struct {
	Name          string
	Email         string
	Phone         string
	PreferredDate string
	PreferredTime string
	Department    string
	Message       string
}

// Mailer delivers form submissions to the clinic inbox.
type Mailer interface {
	SendContactMail(msg ContactMessage) error
	SendAppointmentMail(req AppointmentRequest) error
}

// SMTPMailer sends notification mails through a plain SMTP account.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer creates a mailer from the SMTP configuration.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendContactMail formats and delivers a contact form notification.
func (m *SMTPMailer) SendContactMail(msg ContactMessage) error {
	subject := fmt.Sprintf("İletişim Formu: %s", msg.Subject)

	var body strings.Builder
	body.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px;">`)
	body.WriteString(`<h2>Yeni İletişim Mesajı</h2>`)
	fmt.Fprintf(&body, "<p><strong>Gönderen:</strong> %s</p>", html.EscapeString(msg.Name))
	fmt.Fprintf(&body, "<p><strong>E-posta:</strong> %s</p>", html.EscapeString(msg.Email))
	if msg.Phone != "" {
		fmt.Fprintf(&body, "<p><strong>Telefon:</strong> %s</p>", html.EscapeString(msg.Phone))
	}
	fmt.Fprintf(&body, "<p><strong>Konu:</strong> %s</p>", html.EscapeString(msg.Subject))
	fmt.Fprintf(&body, "<h3>Mesaj:</h3><p>%s</p>", htmlParagraph(msg.Message))
	body.WriteString(`<p style="font-size: 14px; color: #92400e;">Bu mesaj web sitesi iletişim formu aracılığıyla gönderilmiştir.</p>`)
	body.WriteString(`</div>`)

	return m.send(msg.Name, subject, body.String())
}

// SendAppointmentMail formats and delivers an appointment request
// notification.
func (m *SMTPMailer) SendAppointmentMail(req AppointmentRequest) error {
	subject := fmt.Sprintf("Yeni Randevu Talebi - %s", req.Name)

	var body strings.Builder
	body.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px;">`)
	body.WriteString(`<h2>Yeni Randevu Talebi</h2>`)
	fmt.Fprintf(&body, "<p><strong>Hasta Adı:</strong> %s</p>", html.EscapeString(req.Name))
	fmt.Fprintf(&body, "<p><strong>E-posta:</strong> %s</p>", html.EscapeString(req.Email))
	fmt.Fprintf(&body, "<p><strong>Telefon:</strong> %s</p>", html.EscapeString(req.Phone))
	fmt.Fprintf(&body, "<p><strong>Tercih Edilen Tarih:</strong> %s</p>", html.EscapeString(req.PreferredDate))
	if req.PreferredTime != "" {
		fmt.Fprintf(&body, "<p><strong>Tercih Edilen Saat:</strong> %s</p>", html.EscapeString(req.PreferredTime))
	}
	if req.Department != "" {
		fmt.Fprintf(&body, "<p><strong>Bölüm:</strong> %s</p>", html.EscapeString(req.Department))
	}
	if req.Message != "" {
		fmt.Fprintf(&body, "<h3>Ek Mesaj:</h3><p>%s</p>", htmlParagraph(req.Message))
	}
	body.WriteString(`<p style="font-size: 14px; color: #92400e;">Bu randevu talebi web sitesi randevu formu aracılığıyla gönderilmiştir.</p>`)
	body.WriteString(`</div>`)

	return m.send(req.Name, subject, body.String())
}

func (m *SMTPMailer) send(fromName, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.User, fromName)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	return dialer.DialAndSend(msg)
}

func htmlParagraph(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
}
