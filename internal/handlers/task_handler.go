package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"opsboard/internal/metrics"
	"opsboard/internal/models"
	"opsboard/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type createTaskRequest struct {
	Date        string `json:"date" binding:"required"`
	ItemName    string `json:"item_name" binding:"required"`
	TargetQty   int    `json:"target_qty" binding:"required,min=1"`
	Priority    int    `json:"priority"`
	Notes       string `json:"notes"`
	PartyName   string `json:"party_name"`
	BoxType     string `json:"box_type"`
	LogoStatus  string `json:"logo_status"`
	BottomPrint string `json:"bottom_print"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be YYYY-MM-DD"})
		return
	}

	kind := c.Param("kind")
	sess := CurrentSession(c)
	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Kind:        kind,
		Date:        date,
		ItemName:    req.ItemName,
		TargetQty:   req.TargetQty,
		Priority:    req.Priority,
		Notes:       req.Notes,
		PartyName:   req.PartyName,
		BoxType:     req.BoxType,
		LogoStatus:  req.LogoStatus,
		BottomPrint: req.BottomPrint,
		CreatedBy:   sess.UserID,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metrics.TaskOperations.WithLabelValues(kind, "create").Inc()
	c.JSON(http.StatusCreated, task)
}

// Buckets serves the backlog/today/upcoming card data for a kind.
func (h *TaskHandler) Buckets(c *gin.Context) {
	buckets, err := h.taskService.Buckets(c.Param("kind"), time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, buckets)
}

// List is the history view: every task of the kind, optionally filtered by
// status. Admin-only.
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Param("kind"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// Get returns one task by id. The task must belong to the collection named
// in the path.
func (h *TaskHandler) Get(c *gin.Context) {
	task, ok := h.taskInKind(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) UpdateProgress(c *gin.Context) {
	task, ok := h.taskInKind(c)
	if !ok {
		return
	}

	var req struct {
		ReadyQty *int   `json:"ready_qty" binding:"required"`
		Status   string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.taskService.UpdateProgress(task.ID, *req.ReadyQty, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metrics.TaskOperations.WithLabelValues(task.Kind, "progress").Inc()
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	task, ok := h.taskInKind(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(task.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	metrics.TaskOperations.WithLabelValues(task.Kind, "delete").Inc()
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// taskInKind loads the task from the :id parameter and checks it belongs to
// the :kind collection the route (and its view gate) named. Writes the error
// response itself when the lookup fails.
func (h *TaskHandler) taskInKind(c *gin.Context) (*models.Task, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return nil, false
	}

	task, err := h.taskService.GetTaskByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load task"})
		return nil, false
	}
	if task.Kind != c.Param("kind") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return nil, false
	}
	return task, true
}
