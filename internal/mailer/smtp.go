package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/portfolio/backend/internal/model"
)

// dialTimeout bounds the whole SMTP exchange so a hung transport cannot
// hang the request path past the caller's context deadline.
const dialTimeout = 10 * time.Second

// smtpSender delivers mail over SMTP with STARTTLS.
type smtpSender struct {
	cfg Config
}

var _ Sender = (*smtpSender)(nil)

// Notify sends the plain-text operator notification.
func (s *smtpSender) Notify(ctx context.Context, msg model.ContactMessage) error {
	subject := "Portfolio Contact Form - Message from " + msg.Name
	body := notificationBody(msg)
	return s.send(ctx, s.cfg.Recipient, subject, "text/plain; charset=utf-8", body)
}

// Confirm sends the HTML receipt confirmation to the submitter.
func (s *smtpSender) Confirm(ctx context.Context, msg model.ContactMessage) error {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, msg); err != nil {
		return fmt.Errorf("mailer: render confirmation: %w", err)
	}
	return s.send(ctx, msg.Email, "Message received", "text/html; charset=utf-8", buf.String())
}

// send performs one SMTP exchange: dial, STARTTLS, AUTH PLAIN, submit.
func (s *smtpSender) send(ctx context.Context, to, subject, contentType, body string) error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	deadline := time.Now().Add(dialTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	conn, err := net.DialTimeout("tcp", addr, time.Until(deadline))
	if err != nil {
		return fmt.Errorf("mailer: dial %s: %w", addr, err)
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return fmt.Errorf("mailer: set deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("mailer: handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
			return fmt.Errorf("mailer: starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", s.cfg.Address, s.cfg.Password, s.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("mailer: auth: %w", err)
	}

	if err := client.Mail(s.cfg.Address); err != nil {
		return fmt.Errorf("mailer: mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("mailer: rcpt to: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("mailer: data: %w", err)
	}
	headers := "From: " + s.cfg.Address + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: " + contentType + "\r\n\r\n"
	if _, err := w.Write([]byte(headers + body)); err != nil {
		return fmt.Errorf("mailer: write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("mailer: close data: %w", err)
	}
	return client.Quit()
}

func notificationBody(msg model.ContactMessage) string {
	body := "New message from your portfolio contact form:\r\n\r\n" +
		"Name: " + msg.Name + "\r\n" +
		"Email: " + msg.Email + "\r\n"
	if msg.Title != "" {
		body += "Title: " + msg.Title + "\r\n"
	}
	body += "Message: " + msg.Message + "\r\n\r\n" +
		"Sent at: " + msg.Timestamp + "\r\n"
	return body
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<h2>Thank you, {{.Name}}</h2>
{{if .Title}}<p>Your message titled "<b>{{.Title}}</b>" was received.</p>
{{else}}<p>Your message was received.</p>
{{end}}<p>I'll respond within 24-48 hours.</p>
`))
