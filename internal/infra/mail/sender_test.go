package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/xavierca1/mailchimp-organizer/internal/entity"
	"github.com/xavierca1/mailchimp-organizer/internal/usecase"
)

type MockDialer struct {
	mock.Mock
}

func (m *MockDialer) DialAndSend(msgs ...*gomail.Message) error {
	args := m.Called(msgs)
	return args.Error(0)
}

func failedResult() usecase.ConversionResult {
	return usecase.ConversionResult{
		RunID:     "run-1",
		Kind:      entity.KindVolunteer,
		Status:    usecase.StatusFailed,
		InputPath: "/data/vols.txt",
		Error:     "failed to process volunteer file: <bad>",
	}
}

func TestBuildReportFailure(t *testing.T) {
	s := NewEmailSender("smtp.local", 587, "", "", "bot@example.com", []string{"ops@example.com"})

	m, err := s.BuildReport(failedResult())

	require.NoError(t, err)
	assert.Equal(t, []string{"Mailchimp volunteer conversion failed"}, m.GetHeader("Subject"))
	assert.Equal(t, []string{"ops@example.com"}, m.GetHeader("To"))

	var body strings.Builder
	_, err = m.WriteTo(&body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "&lt;bad&gt;")
}

func TestBuildReportWithoutRecipients(t *testing.T) {
	s := NewEmailSender("smtp.local", 587, "", "", "bot@example.com", nil)

	_, err := s.BuildReport(failedResult())
	assert.Error(t, err)
}

func TestNotifyConversionSends(t *testing.T) {
	d := new(MockDialer)
	d.On("DialAndSend", mock.Anything).Return(nil)
	s := NewEmailSender("smtp.local", 587, "", "", "bot@example.com", []string{"ops@example.com"}).WithDialer(d)

	require.NoError(t, s.NotifyConversion(context.Background(), failedResult()))
	d.AssertNumberOfCalls(t, "DialAndSend", 1)
}

func TestNotifyConversionSendError(t *testing.T) {
	d := new(MockDialer)
	d.On("DialAndSend", mock.Anything).Return(errors.New("connection refused"))
	s := NewEmailSender("smtp.local", 587, "", "", "bot@example.com", []string{"ops@example.com"}).WithDialer(d)

	err := s.NotifyConversion(context.Background(), failedResult())
	assert.ErrorContains(t, err, "connection refused")
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Mailchimp roster list ready (3 rows)",
		subject(ReportEmailData{Kind: "roster", Succeeded: true, RowsWritten: 3}))
}
