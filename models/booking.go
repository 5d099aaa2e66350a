package models

import "mime/multipart"

// BookingRequest carries the client-submitted booking form. Field names on
// the wire match the studio's public form (Portuguese).
type BookingRequest struct {
	Name  string                `form:"nome"`
	Phone string                `form:"telefone"`
	Date  string                `form:"date"` // "YYYY-MM-DD"
	Time  string                `form:"time"` // "HH:MM"
	Idea  string                `form:"ideia"`
	Image *multipart.FileHeader `form:"ideia-imagem"`
}

// BookingConfirmation is returned on a successful booking. Warnings lists
// best-effort steps (spreadsheet log, email) that failed without aborting
// the booking.
type BookingConfirmation struct {
	Message        string   `json:"message"`
	EventID        string   `json:"eventId"`
	WhatsappNumber string   `json:"whatsappNumber"`
	Warnings       []string `json:"warnings,omitempty"`
}
