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

type StoreHandler struct {
	storeRepo     repository.StoreRepository
	ledgerService services.LedgerService
}

func NewStoreHandler(storeRepo repository.StoreRepository, ledgerService services.LedgerService) *StoreHandler {
	return &StoreHandler{storeRepo: storeRepo, ledgerService: ledgerService}
}

func (h *StoreHandler) Create(c *gin.Context) {
	var req struct {
		Date     string `json:"date" binding:"required"`
		Type     string `json:"type" binding:"required,oneof=inward outward"`
		ItemName string `json:"item_name" binding:"required"`
		Quantity int    `json:"quantity" binding:"required,min=1"`
		Note     string `json:"note"`
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
	txn := &models.StoreTransaction{
		Date:      models.DateOnly(date),
		Type:      req.Type,
		ItemName:  req.ItemName,
		Quantity:  req.Quantity,
		Note:      req.Note,
		CreatedBy: sess.UserID,
	}
	if err := h.storeRepo.Create(txn); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		return
	}

	metrics.RecordsInserted.WithLabelValues("store_transactions").Inc()
	c.JSON(http.StatusCreated, txn)
}

func (h *StoreHandler) List(c *gin.Context) {
	txns, err := h.storeRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load transactions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txns})
}

// Stock serves net stock per item, optionally filtered by item search.
func (h *StoreHandler) Stock(c *gin.Context) {
	stock, err := h.ledgerService.StockByItem(c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stock"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stock": stock})
}
