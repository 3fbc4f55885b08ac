package handlers

import (
	"net/http"
	"strconv"
	"time"

	"opsboard/internal/metrics"
	"opsboard/internal/models"
	"opsboard/internal/repository"
	"opsboard/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderRepo     repository.OrderRepository
	ledgerService services.LedgerService
}

func NewOrderHandler(orderRepo repository.OrderRepository, ledgerService services.LedgerService) *OrderHandler {
	return &OrderHandler{orderRepo: orderRepo, ledgerService: ledgerService}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req struct {
		Date      string `json:"date" binding:"required"`
		Type      string `json:"type" binding:"required,oneof=received dispatch"`
		PartyName string `json:"party_name" binding:"required"`
		ItemName  string `json:"item_name" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,min=1"`
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
	order := &models.Order{
		Date:      models.DateOnly(date),
		Type:      req.Type,
		PartyName: req.PartyName,
		ItemName:  req.ItemName,
		Quantity:  req.Quantity,
		CreatedBy: sess.UserID,
	}
	if err := h.orderRepo.Create(order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record order"})
		return
	}

	metrics.RecordsInserted.WithLabelValues("orders").Inc()
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// Pending serves the item-by-party net quantity matrix.
func (h *OrderHandler) Pending(c *gin.Context) {
	matrix, err := h.ledgerService.NetByItemAndParty()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute pending matrix"})
		return
	}
	c.JSON(http.StatusOK, matrix)
}

// TopPending serves the top-n pending items, default five.
func (h *OrderHandler) TopPending(c *gin.Context) {
	n, _ := strconv.Atoi(c.DefaultQuery("n", "5"))
	top, err := h.ledgerService.TopPending(n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute top pending"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": top})
}
