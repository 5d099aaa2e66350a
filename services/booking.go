// services/booking.go
package services

import (
	"context"
	"fmt"
	"time"

	"inkwell/models"
	"inkwell/services/calendar"
	"inkwell/services/notification"
	"inkwell/services/sheets"
	"inkwell/services/storage"
	"inkwell/utils"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"
)

const noImageSentinel = "Nenhuma imagem enviada."
const uploadFailedSentinel = "Erro ao fazer upload da imagem."

// BookingService creates appointments.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (models.BookingConfirmation, error)
}

// DefaultBookingService runs the booking pipeline:
// validate -> upload (optional) -> create event (fatal) -> log row
// (best-effort) -> notify (best-effort). There is no double-booking lock:
// the calendar itself is the source of truth for occupied slots.
type DefaultBookingService struct {
	Hours          models.BusinessHours
	Calendar       calendar.EventWriter
	Sheet          sheets.RowAppender
	Storage        storage.StorageService
	Email          notification.EmailService
	PhoneRegion    string
	WhatsappNumber string
}

func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (models.BookingConfirmation, error) {
	logger := utils.GetLogger()
	bookingID := uuid.New().String()

	if req.Phone == "" {
		return models.BookingConfirmation{}, NewInputError("O número de telefone é obrigatório.")
	}
	parsed, err := phonenumbers.Parse(req.Phone, s.PhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return models.BookingConfirmation{}, NewInputError("O número de telefone fornecido não parece ser válido.")
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, s.Hours.Location)
	if err != nil {
		return models.BookingConfirmation{}, fmt.Errorf("booking: malformed date/time %q %q: %w", req.Date, req.Time, err)
	}
	end := start.Add(time.Duration(s.Hours.DurationMinutes) * time.Minute)

	var warnings []string

	imageLink := noImageSentinel
	if req.Image != nil {
		link, err := s.uploadReference(ctx, req)
		if err != nil {
			logger.Error("reference upload failed",
				zap.String("bookingID", bookingID), zap.Error(err))
			imageLink = uploadFailedSentinel
			warnings = append(warnings, "Falha no upload da imagem de referência.")
		} else {
			imageLink = link
		}
	}

	description := fmt.Sprintf("Contato: %s\n\nIdeia: %s\n\nReferência: %s",
		req.Phone, orDefault(req.Idea, "N/A"), imageLink)

	eventID, err := s.Calendar.CreateEvent(ctx, calendar.Event{
		Summary:     fmt.Sprintf("Tatuagem - %s", orDefault(req.Name, "Novo Cliente")),
		Description: description,
		Start:       start,
		End:         end,
	})
	if err != nil {
		return models.BookingConfirmation{}, NewUpstreamError("booking: failed to create calendar event", err)
	}
	logger.Info("booking event created",
		zap.String("bookingID", bookingID),
		zap.String("eventID", eventID),
		zap.Time("start", start))

	if s.Sheet != nil {
		row := []any{start.Format("02/01/2006 15:04"), req.Name, req.Phone}
		if err := s.Sheet.AppendRow(ctx, row); err != nil {
			logger.Error("spreadsheet log failed",
				zap.String("bookingID", bookingID), zap.Error(err))
			warnings = append(warnings, "Falha ao registrar na planilha.")
		}
	}

	if s.Email != nil {
		notice := notification.BookingNotice{
			ClientName:    req.Name,
			Phone:         req.Phone,
			Date:          req.Date,
			Time:          req.Time,
			Idea:          orDefault(req.Idea, "N/A"),
			ReferenceLink: imageLink,
		}
		if err := s.Email.SendBookingNotice(ctx, notice); err != nil {
			logger.Error("booking notice email failed",
				zap.String("bookingID", bookingID), zap.Error(err))
			warnings = append(warnings, "Falha ao enviar o e-mail de notificação.")
		}
	}

	return models.BookingConfirmation{
		Message:        "Agendamento criado!",
		EventID:        eventID,
		WhatsappNumber: s.WhatsappNumber,
		Warnings:       warnings,
	}, nil
}

func (s *DefaultBookingService) uploadReference(ctx context.Context, req models.BookingRequest) (string, error) {
	if s.Storage == nil {
		return "", fmt.Errorf("booking: no storage backend configured")
	}
	f, err := req.Image.Open()
	if err != nil {
		return "", fmt.Errorf("booking: failed to open uploaded image: %w", err)
	}
	defer f.Close()

	name := fmt.Sprintf("Ref_%s_%s.jpg", req.Name, req.Date)
	mimeType := req.Image.Header.Get("Content-Type")
	return s.Storage.UploadFile(ctx, name, mimeType, f)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
