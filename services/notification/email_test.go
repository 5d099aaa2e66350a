package notification

import (
	"context"
	"strings"
	"testing"
)

func TestNewSendGridEmailService_NilWithoutAPIKey(t *testing.T) {
	svc := NewSendGridEmailService("", "artist@example.com", "studio@example.com", "Estúdio")
	if svc != nil {
		t.Error("expected nil service when API key is empty")
	}
}

func TestSendBookingNotice_NilService(t *testing.T) {
	var svc *SendGridEmailService
	err := svc.SendBookingNotice(context.Background(), BookingNotice{ClientName: "Maria"})
	if err == nil {
		t.Error("expected error when service is not configured")
	}
}

func TestNoticeHTML(t *testing.T) {
	html := noticeHTML(BookingNotice{
		ClientName:    "Maria",
		Phone:         "+5511912345678",
		Date:          "2025-07-15",
		Time:          "14:00",
		Idea:          "Fineline floral",
		ReferenceLink: "https://drive.example/ref",
	})

	for _, want := range []string{
		"Agendamento recebido!",
		"Maria",
		"+5511912345678",
		"2025-07-15 às 14:00",
		"Fineline floral",
		`href="https://drive.example/ref"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("notice HTML missing %q", want)
		}
	}
}
