package services

import (
	"fmt"
	"net/smtp"
	"strings"
)

type IMailService interface {
	SendPasswordResetMail(to, otpCode string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // e.g. 587
	Username string
	Password string
	From     string // envelope from, e.g. "no-reply@fitspace.app"
	FromName string // display name
	AppName  string
}

type smtpMailService struct {
	cfg SMTPConfig
}

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{cfg: cfg}
}

func (s *smtpMailService) SendPasswordResetMail(to, otpCode string) error {
	subject := fmt.Sprintf("%s: password reset code", s.cfg.AppName)
	body := fmt.Sprintf(
		"Your %s password reset code is %s.\r\nIt expires in 15 minutes. If you did not request a reset, ignore this message.\r\n",
		s.cfg.AppName, otpCode,
	)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String()))
}
