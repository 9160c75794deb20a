package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
)

const otpSubject = "Password Reset OTP"

// SendMailFunc matches smtp.SendMail so tests can capture outgoing mail.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends reset codes through an SMTP relay.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	send     SendMailFunc
}

// NewSMTPMailer constructs an SMTPMailer. The username doubles as the sender.
func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		send:     smtp.SendMail,
	}
}

// SendOTP mails code to the given address.
func (m *SMTPMailer) SendOTP(ctx context.Context, to, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.host == "" || m.username == "" {
		return errors.New("mail transport not configured")
	}

	var auth smtp.Auth
	if m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))
	msg := composeMessage(m.username, to, otpSubject, otpBody(code))
	if err := m.send(addr, auth, m.username, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func otpBody(code string) string {
	return fmt.Sprintf("Your OTP for password reset is: %s\n\nIf you did not request this, please ignore this email.\n", code)
}

func composeMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}
