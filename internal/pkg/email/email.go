package email

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"time"

	"github.com/fintradify/attendance-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	// SendPayslip emails the rendered payslip PDF to the employee.
	SendPayslip(to, employeeName, companyName, month string, filename string, pdf []byte) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type payslipEmailData struct {
	EmployeeName string
	CompanyName  string
	Month        string
}

// SendPayslip sends the monthly payslip with the PDF attached.
func (s *emailServiceImpl) SendPayslip(to, employeeName, companyName, month string, filename string, pdf []byte) error {
	data := payslipEmailData{
		EmployeeName: employeeName,
		CompanyName:  companyName,
		Month:        month,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "payslip.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("Your Salary Slip for %s", month)
	return s.sendWithAttachment(to, subject, body.String(), filename, pdf)
}

func (s *emailServiceImpl) sendWithAttachment(to, subject, htmlBody, filename string, attachment []byte) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	var msg bytes.Buffer
	writer := multipart.NewWriter(&msg)

	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", writer.Boundary()))
	msg.WriteString("\r\n")

	htmlPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type": {`text/html; charset="UTF-8"`},
	})
	if err != nil {
		return fmt.Errorf("failed to create html part: %w", err)
	}
	if _, err := htmlPart.Write([]byte(htmlBody)); err != nil {
		return fmt.Errorf("failed to write html part: %w", err)
	}

	pdfPart, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {"application/pdf"},
		"Content-Transfer-Encoding": {"base64"},
		"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", filename)},
	})
	if err != nil {
		return fmt.Errorf("failed to create attachment part: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(attachment)
	if _, err := pdfPart.Write([]byte(encoded)); err != nil {
		return fmt.Errorf("failed to write attachment: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize message: %w", err)
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, msg.Bytes())
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
