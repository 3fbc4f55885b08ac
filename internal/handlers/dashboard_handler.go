package handlers

import (
	"net/http"
	"time"

	"opsboard/internal/models"
	"opsboard/internal/repository"
	"opsboard/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	taskService   services.TaskService
	ledgerService services.LedgerService
	orderRepo     repository.OrderRepository
	storeRepo     repository.StoreRepository
}

func NewDashboardHandler(
	taskService services.TaskService,
	ledgerService services.LedgerService,
	orderRepo repository.OrderRepository,
	storeRepo repository.StoreRepository,
) *DashboardHandler {
	return &DashboardHandler{
		taskService:   taskService,
		ledgerService: ledgerService,
		orderRepo:     orderRepo,
		storeRepo:     storeRepo,
	}
}

// Summary is the landing view every role can see: open task counts per kind,
// record counts, and the top pending items.
func (h *DashboardHandler) Summary(c *gin.Context) {
	now := time.Now()

	production, err := h.taskService.Buckets(string(models.KindProduction), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load production tasks"})
		return
	}
	packing, err := h.taskService.Buckets(string(models.KindPacking), now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load packing tasks"})
		return
	}
	topPending, err := h.ledgerService.TopPending(5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute top pending"})
		return
	}
	orderCount, err := h.orderRepo.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
		return
	}
	txnCount, err := h.storeRepo.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count store transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"production":              bucketCounts(production),
		"packing":                 bucketCounts(packing),
		"top_pending":             topPending,
		"order_count":             orderCount,
		"store_transaction_count": txnCount,
	})
}

func bucketCounts(b *services.TaskBuckets) gin.H {
	return gin.H{
		"backlog":  len(b.Backlog),
		"today":    len(b.Today),
		"upcoming": len(b.Upcoming),
	}
}
