package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/models"
	"inkwell/services/calendar"
	"inkwell/services/notification"
)

type spyEventWriter struct {
	calls []calendar.Event
	id    string
	err   error
}

func (s *spyEventWriter) CreateEvent(ctx context.Context, ev calendar.Event) (string, error) {
	s.calls = append(s.calls, ev)
	return s.id, s.err
}

type spyRowAppender struct {
	rows [][]any
	err  error
}

func (s *spyRowAppender) AppendRow(ctx context.Context, values []any) error {
	s.rows = append(s.rows, values)
	return s.err
}

type spyStorage struct {
	uploads int
	link    string
	err     error
}

func (s *spyStorage) UploadFile(ctx context.Context, name, mimeType string, r io.Reader) (string, error) {
	s.uploads++
	return s.link, s.err
}

type spyEmail struct {
	notices []notification.BookingNotice
	err     error
}

func (s *spyEmail) SendBookingNotice(ctx context.Context, notice notification.BookingNotice) error {
	s.notices = append(s.notices, notice)
	return s.err
}

func newBookingService(t *testing.T, writer *spyEventWriter, sheet *spyRowAppender, email *spyEmail) *DefaultBookingService {
	t.Helper()
	return &DefaultBookingService{
		Hours:          testHours(t, 30),
		Calendar:       writer,
		Sheet:          sheet,
		Email:          email,
		PhoneRegion:    "BR",
		WhatsappNumber: "5511999999999",
	}
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		Name:  "Maria",
		Phone: "+5511912345678",
		Date:  "2025-07-15",
		Time:  "14:00",
		Idea:  "Fineline floral no antebraço",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	writer := &spyEventWriter{id: "evt-123"}
	sheet := &spyRowAppender{}
	email := &spyEmail{}
	svc := newBookingService(t, writer, sheet, email)

	conf, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "Agendamento criado!", conf.Message)
	assert.Equal(t, "evt-123", conf.EventID)
	assert.Equal(t, "5511999999999", conf.WhatsappNumber)
	assert.Empty(t, conf.Warnings)

	require.Len(t, writer.calls, 1)
	ev := writer.calls[0]
	assert.Equal(t, "Tatuagem - Maria", ev.Summary)
	assert.Contains(t, ev.Description, "Contato: +5511912345678")
	assert.Contains(t, ev.Description, "Fineline floral")
	assert.Contains(t, ev.Description, "Nenhuma imagem enviada.")
	assert.Equal(t, time.Hour, ev.End.Sub(ev.Start))

	require.Len(t, sheet.rows, 1)
	assert.Equal(t, []any{"15/07/2025 14:00", "Maria", "+5511912345678"}, sheet.rows[0])

	require.Len(t, email.notices, 1)
	assert.Equal(t, "Maria", email.notices[0].ClientName)
}

func TestCreateBooking_MissingPhone(t *testing.T) {
	writer := &spyEventWriter{id: "evt-123"}
	sheet := &spyRowAppender{}
	email := &spyEmail{}
	svc := newBookingService(t, writer, sheet, email)

	req := validRequest()
	req.Phone = ""
	_, err := svc.CreateBooking(context.Background(), req)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)

	// Rejected before any external call.
	assert.Empty(t, writer.calls)
	assert.Empty(t, sheet.rows)
	assert.Empty(t, email.notices)
}

func TestCreateBooking_InvalidPhone(t *testing.T) {
	writer := &spyEventWriter{id: "evt-123"}
	sheet := &spyRowAppender{}
	email := &spyEmail{}
	svc := newBookingService(t, writer, sheet, email)

	req := validRequest()
	req.Phone = "12345"
	_, err := svc.CreateBooking(context.Background(), req)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Empty(t, writer.calls)
	assert.Empty(t, sheet.rows)
	assert.Empty(t, email.notices)
}

func TestCreateBooking_CalendarFailureIsFatal(t *testing.T) {
	writer := &spyEventWriter{err: errors.New("quota exceeded")}
	sheet := &spyRowAppender{}
	email := &spyEmail{}
	svc := newBookingService(t, writer, sheet, email)

	_, err := svc.CreateBooking(context.Background(), validRequest())

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)

	// Nothing downstream of the failed source-of-truth step runs.
	assert.Empty(t, sheet.rows)
	assert.Empty(t, email.notices)
}

func TestCreateBooking_SheetFailureIsBestEffort(t *testing.T) {
	writer := &spyEventWriter{id: "evt-456"}
	sheet := &spyRowAppender{err: errors.New("sheet gone")}
	email := &spyEmail{}
	svc := newBookingService(t, writer, sheet, email)

	conf, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "evt-456", conf.EventID)
	assert.Len(t, conf.Warnings, 1)
	assert.Len(t, email.notices, 1)
}

func TestCreateBooking_EmailFailureIsBestEffort(t *testing.T) {
	writer := &spyEventWriter{id: "evt-789"}
	sheet := &spyRowAppender{}
	email := &spyEmail{err: errors.New("smtp down")}
	svc := newBookingService(t, writer, sheet, email)

	conf, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "evt-789", conf.EventID)
	assert.Len(t, conf.Warnings, 1)
	assert.Len(t, sheet.rows, 1)
}

func TestCreateBooking_NoSheetNoEmailConfigured(t *testing.T) {
	writer := &spyEventWriter{id: "evt-000"}
	svc := newBookingService(t, writer, nil, nil)
	svc.Sheet = nil
	svc.Email = nil

	conf, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "evt-000", conf.EventID)
	assert.Empty(t, conf.Warnings)
}

func TestCreateBooking_MalformedDate(t *testing.T) {
	writer := &spyEventWriter{id: "evt-123"}
	svc := newBookingService(t, writer, &spyRowAppender{}, &spyEmail{})

	req := validRequest()
	req.Date = "15-07-2025"
	_, err := svc.CreateBooking(context.Background(), req)

	require.Error(t, err)
	var inputErr *InputError
	assert.False(t, errors.As(err, &inputErr), "malformed date is an internal error, not a 400")
	assert.Empty(t, writer.calls)
}

func TestCreateBooking_NoImageSkipsUpload(t *testing.T) {
	writer := &spyEventWriter{id: "evt-123"}
	storage := &spyStorage{link: "https://drive.example/ref"}
	svc := newBookingService(t, writer, &spyRowAppender{}, &spyEmail{})
	svc.Storage = storage

	_, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Zero(t, storage.uploads)
	assert.Contains(t, writer.calls[0].Description, "Nenhuma imagem enviada.")
}

func TestCreateBooking_EmptyIdeaDefaults(t *testing.T) {
	writer := &spyEventWriter{id: "evt-123"}
	svc := newBookingService(t, writer, &spyRowAppender{}, &spyEmail{})

	req := validRequest()
	req.Idea = ""
	_, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, writer.calls, 1)
	assert.True(t, strings.Contains(writer.calls[0].Description, "Ideia: N/A"))
}
