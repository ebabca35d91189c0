package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/mailchimp-organizer/internal/usecase"
)

//go:embed templates/report.html
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "templates/report.html"))

func NewEmailSender(host string, port int, user, password, from string, to []string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
		dialer:   gomail.NewDialer(host, port, user, password),
	}
}

// WithDialer swaps the SMTP transport.
func (s *EmailSender) WithDialer(d Dialer) *EmailSender {
	s.dialer = d
	return s
}

// NotifyConversion mails a run report. Successful runs carry the generated
// file as an attachment.
func (s *EmailSender) NotifyConversion(ctx context.Context, result usecase.ConversionResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.BuildReport(result)
	if err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}
	return nil
}

func (s *EmailSender) BuildReport(result usecase.ConversionResult) (*gomail.Message, error) {
	if len(s.To) == 0 {
		return nil, fmt.Errorf("no report recipients configured")
	}

	data := ReportEmailData{
		RunID:       result.RunID,
		Kind:        string(result.Kind),
		InputPath:   result.InputPath,
		OutputPath:  result.OutputPath,
		RowsRead:    result.RowsRead,
		RowsWritten: result.RowsWritten,
		Error:       result.Error,
		Succeeded:   result.Succeeded(),
	}

	var body bytes.Buffer
	if err := reportTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to render report template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To...)
	m.SetHeader("Subject", subject(data))
	m.SetBody("text/html", body.String())
	if data.Succeeded && data.OutputPath != "" {
		m.Attach(data.OutputPath)
	}

	return m, nil
}

func subject(data ReportEmailData) string {
	if data.Succeeded {
		return fmt.Sprintf("Mailchimp %s list ready (%d rows)", data.Kind, data.RowsWritten)
	}
	return fmt.Sprintf("Mailchimp %s conversion failed", data.Kind)
}
