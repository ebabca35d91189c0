package mail

import "gopkg.in/gomail.v2"

type ReportEmailData struct {
	RunID       string
	Kind        string
	InputPath   string
	OutputPath  string
	RowsRead    int
	RowsWritten int
	Error       string
	Succeeded   bool
}

// Dialer is the part of gomail.Dialer the sender needs.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       []string

	dialer Dialer
}
