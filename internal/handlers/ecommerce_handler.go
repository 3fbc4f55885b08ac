package handlers

import (
	"net/http"
	"time"

	"opsboard/internal/metrics"
	"opsboard/internal/models"
	"opsboard/internal/repository"
	"opsboard/internal/services"

	"github.com/gin-gonic/gin"
)

type EcommerceHandler struct {
	ecomRepo      repository.EcommerceRepository
	ledgerService services.LedgerService
}

func NewEcommerceHandler(ecomRepo repository.EcommerceRepository, ledgerService services.LedgerService) *EcommerceHandler {
	return &EcommerceHandler{ecomRepo: ecomRepo, ledgerService: ledgerService}
}

func (h *EcommerceHandler) Create(c *gin.Context) {
	var req struct {
		Date       string `json:"date" binding:"required"`
		Channel    string `json:"channel" binding:"required"`
		Orders     int    `json:"orders" binding:"min=0"`
		Dispatches int    `json:"dispatches" binding:"min=0"`
		Returns    int    `json:"returns" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be YYYY-MM-DD"})
		return
	}

	sess := CurrentSession(c)
	entry := &models.EcommerceLog{
		Date:       models.DateOnly(date),
		Channel:    req.Channel,
		Orders:     req.Orders,
		Dispatches: req.Dispatches,
		Returns:    req.Returns,
		CreatedBy:  sess.UserID,
	}
	if err := h.ecomRepo.Create(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sales log"})
		return
	}

	metrics.RecordsInserted.WithLabelValues("ecommerce_logs").Inc()
	c.JSON(http.StatusCreated, entry)
}

func (h *EcommerceHandler) List(c *gin.Context) {
	logs, err := h.ecomRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sales logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// Summary serves per-channel totals for the chart view.
func (h *EcommerceHandler) Summary(c *gin.Context) {
	summary, err := h.ledgerService.EcommerceSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"channels": summary})
}
