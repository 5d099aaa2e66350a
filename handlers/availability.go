package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inkwell/services"
	"inkwell/utils"
)

// AvailabilityHandler serves the free-slot lookup endpoint.
type AvailabilityHandler struct {
	Svc services.AvailabilityService
}

func NewAvailabilityHandler(svc services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// GetAvailableSlotsHandler returns the free "HH:MM" slot starts for the
// date given in the query string.
func (h *AvailabilityHandler) GetAvailableSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Data é obrigatória", "missing date query parameter")
		return
	}

	slots, err := h.Svc.GetAvailableSlots(c.Request.Context(), date)
	if err != nil {
		var inputErr *services.InputError
		if errors.As(err, &inputErr) {
			utils.JSONError(c, http.StatusBadRequest, inputErr.Message, date)
			return
		}
		utils.GetLogger().Error("failed to compute available slots",
			zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno no servidor ao buscar horários."})
		return
	}

	c.JSON(http.StatusOK, slots)
}
