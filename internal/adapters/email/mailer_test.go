package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeSES struct {
	last *ses.SendEmailInput
	err  error
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.last = in
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := &sesMailer{client: client, fromAddress: "noreply@example.com", fromName: "Festival", logger: testLogger}

	err := m.Send(context.Background(), "staff@example.com", "Hi", "<p>hi</p>", "")
	require.NoError(t, err)
	require.NotNil(t, client.last)
	assert.Equal(t, "Festival <noreply@example.com>", aws.ToString(client.last.Source))
	assert.Equal(t, []string{"staff@example.com"}, client.last.Destination.ToAddresses)
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.last.Message.Body.Html.Data))
	assert.Nil(t, client.last.Message.Body.Text)
}

func TestSESMailer_SendError(t *testing.T) {
	m := &sesMailer{client: &fakeSES{err: errors.New("throttled")}, fromAddress: "noreply@example.com", logger: testLogger}
	err := m.Send(context.Background(), "staff@example.com", "Hi", "", "hi")
	require.Error(t, err)
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)
	require.NoError(t, m.Send(context.Background(), "a@example.com", "s", "", ""))

	m, err = NewMailer(MailerConfig{Provider: "unknown"}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: "smtp", FromAddress: "noreply@example.com"}, testLogger)
	require.Error(t, err)

	m, err = NewMailer(MailerConfig{Provider: "smtp", FromAddress: "noreply@example.com", SMTP: SMTPConfig{Host: "smtp.example.com"}}, testLogger)
	require.NoError(t, err)
	require.IsType(t, &smtpMailer{}, m)
	d, ok := m.(*smtpMailer).dialer.(*gomail.Dialer)
	require.True(t, ok)
	assert.Equal(t, 587, d.Port)

	_, err = NewMailer(MailerConfig{Provider: "ses"}, testLogger)
	require.Error(t, err)

	m, err = NewMailer(MailerConfig{Provider: "ses", FromAddress: "noreply@example.com", SES: SESConfig{Region: "us-east-1"}}, testLogger)
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)
}

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestSMTPMailer_Send(t *testing.T) {
	d := &fakeDialer{}
	m := &smtpMailer{dialer: d, fromAddress: "noreply@example.com", fromName: "Festival", logger: testLogger}

	err := m.Send(context.Background(), "staff@example.com", "Hi", "<p>hi</p>", "hi")
	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	msg := d.sent[0]
	assert.Equal(t, []string{`"Festival" <noreply@example.com>`}, msg.GetHeader("From"))
	assert.Equal(t, []string{"staff@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Hi"}, msg.GetHeader("Subject"))
}

func TestSMTPMailer_SendError(t *testing.T) {
	m := &smtpMailer{dialer: &fakeDialer{err: errors.New("connection refused")}, fromAddress: "noreply@example.com", logger: testLogger}
	err := m.Send(context.Background(), "staff@example.com", "Hi", "", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSMTPMailer_CanceledContext(t *testing.T) {
	d := &fakeDialer{}
	m := &smtpMailer{dialer: d, fromAddress: "noreply@example.com", logger: testLogger}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, "staff@example.com", "Hi", "", "hi")
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.sent)
}
