package handlers

import (
	"net/http"
	"time"

	"opsboard/internal/services"

	"github.com/gin-gonic/gin"
)

type ForecastHandler struct {
	ledgerService services.LedgerService
}

func NewForecastHandler(ledgerService services.LedgerService) *ForecastHandler {
	return &ForecastHandler{ledgerService: ledgerService}
}

// Materials serves box-type material requirements for the packing window
// (last week through the next five days).
func (h *ForecastHandler) Materials(c *gin.Context) {
	forecast, err := h.ledgerService.MaterialForecast(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute forecast"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"materials": forecast})
}
