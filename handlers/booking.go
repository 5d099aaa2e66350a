package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inkwell/models"
	"inkwell/services"
	"inkwell/utils"
)

// BookingHandler serves the booking creation endpoint.
type BookingHandler struct {
	Svc services.BookingService
}

func NewBookingHandler(svc services.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CreateBookingHandler accepts the multipart booking form, runs the booking
// pipeline and returns the confirmation.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Dados de agendamento inválidos.", err.Error())
		return
	}

	confirmation, err := h.Svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var inputErr *services.InputError
		if errors.As(err, &inputErr) {
			utils.JSONError(c, http.StatusBadRequest, inputErr.Message, req.Phone)
			return
		}
		utils.GetLogger().Error("booking failed",
			zap.String("date", req.Date), zap.String("time", req.Time), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno no servidor."})
		return
	}

	c.JSON(http.StatusCreated, confirmation)
}
