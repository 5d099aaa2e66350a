package notification

import (
	"context"
	"fmt"

	"inkwell/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// BookingNotice carries the booking details rendered into the artist's
// notification email.
type BookingNotice struct {
	ClientName    string
	Phone         string
	Date          string
	Time          string
	Idea          string
	ReferenceLink string
}

// EmailService sends transactional notifications to the artist.
type EmailService interface {
	SendBookingNotice(ctx context.Context, notice BookingNotice) error
}

// SendGridEmailService is the production implementation.
type SendGridEmailService struct {
	client      *sendgrid.Client
	artistEmail string
	senderEmail string
	senderName  string
}

// NewSendGridEmailService returns nil when no API key is configured, which
// callers treat as "email disabled" rather than an error.
func NewSendGridEmailService(apiKey, artistEmail, senderEmail, senderName string) *SendGridEmailService {
	if apiKey == "" {
		return nil
	}
	return &SendGridEmailService{
		client:      sendgrid.NewSendClient(apiKey),
		artistEmail: artistEmail,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

// SendBookingNotice emails the artist about a new booking.
func (s *SendGridEmailService) SendBookingNotice(ctx context.Context, notice BookingNotice) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("notification: email client not configured")
	}

	from := mail.NewEmail(s.senderName, s.senderEmail)
	to := mail.NewEmail("", s.artistEmail)
	subject := fmt.Sprintf("Novo Agendamento: %s", notice.ClientName)
	html := noticeHTML(notice)

	message := mail.NewSingleEmail(from, subject, to, "", html)
	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("notification: sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("notification: sendgrid returned status %d", response.StatusCode)
	}

	utils.GetLogger().Info("booking notice sent",
		zap.String("client", notice.ClientName),
		zap.Int("status", response.StatusCode))
	return nil
}

func noticeHTML(n BookingNotice) string {
	return fmt.Sprintf(
		`<h3>✅ Agendamento recebido!</h3>`+
			`<p><strong>Cliente:</strong> %s</p>`+
			`<p><strong>Contato:</strong> %s</p>`+
			`<p><strong>Data:</strong> %s às %s</p>`+
			`<p><strong>Ideia:</strong> %s</p>`+
			`<p><strong>Referência:</strong> <a href="%s">%s</a></p>`,
		n.ClientName, n.Phone, n.Date, n.Time, n.Idea, n.ReferenceLink, n.ReferenceLink)
}
