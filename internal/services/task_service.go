package services

import (
	"errors"
	"fmt"
	"time"

	"opsboard/internal/models"
	"opsboard/internal/repository"
)

// TaskBuckets partitions open tasks by date relative to the current day.
type TaskBuckets struct {
	Backlog  []models.Task `json:"backlog"`
	Today    []models.Task `json:"today"`
	Upcoming []models.Task `json:"upcoming"`
}

// CreateTaskInput carries the form fields for a new production or packing
// task. Packing fields are ignored for production tasks.
type CreateTaskInput struct {
	Kind        string
	Date        time.Time
	ItemName    string
	TargetQty   int
	Priority    int
	Notes       string
	PartyName   string
	BoxType     string
	LogoStatus  string
	BottomPrint string
	CreatedBy   uint
}

type TaskService interface {
	CreateTask(input CreateTaskInput) (*models.Task, error)
	GetTaskByID(id uint) (*models.Task, error)
	ListTasks(kind, status string) ([]models.Task, error)
	Buckets(kind string, today time.Time) (*TaskBuckets, error)
	UpdateProgress(taskID uint, readyQty int, status string) error
	DeleteTask(id uint) error
}

type taskService struct {
	taskRepo repository.TaskRepository
}

func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

func (s *taskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if !models.ValidKind(input.Kind) {
		return nil, fmt.Errorf("unknown task kind %q", input.Kind)
	}
	if input.ItemName == "" {
		return nil, errors.New("item name is required")
	}
	if input.TargetQty < 1 {
		return nil, errors.New("target quantity must be at least 1")
	}
	if input.Priority == 0 {
		input.Priority = 3
	}
	if input.Priority < 1 || input.Priority > 3 {
		return nil, errors.New("priority must be between 1 and 3")
	}

	task := &models.Task{
		Kind:      input.Kind,
		Date:      models.DateOnly(input.Date),
		ItemName:  input.ItemName,
		TargetQty: input.TargetQty,
		ReadyQty:  0,
		Priority:  input.Priority,
		Status:    string(models.StatusPending),
		Notes:     input.Notes,
		CreatedBy: input.CreatedBy,
	}
	if input.Kind == string(models.KindPacking) {
		task.PartyName = input.PartyName
		task.BoxType = input.BoxType
		task.LogoStatus = input.LogoStatus
		task.BottomPrint = input.BottomPrint
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetTaskByID(id uint) (*models.Task, error) {
	return s.taskRepo.GetByID(id)
}

func (s *taskService) ListTasks(kind, status string) ([]models.Task, error) {
	if !models.ValidKind(kind) {
		return nil, fmt.Errorf("unknown task kind %q", kind)
	}
	if status == "" {
		return s.taskRepo.GetByKind(kind)
	}
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("unknown task status %q", status)
	}
	return s.taskRepo.GetByKindAndStatus(kind, status)
}

// Buckets classifies every non-complete task of the kind as backlog, today
// or upcoming by comparing calendar days. Completed tasks never appear.
// Order within each bucket is priority ascending, then date ascending.
func (s *taskService) Buckets(kind string, today time.Time) (*TaskBuckets, error) {
	if !models.ValidKind(kind) {
		return nil, fmt.Errorf("unknown task kind %q", kind)
	}

	tasks, err := s.taskRepo.GetOpenByKind(kind)
	if err != nil {
		return nil, err
	}

	buckets := &TaskBuckets{
		Backlog:  []models.Task{},
		Today:    []models.Task{},
		Upcoming: []models.Task{},
	}
	day := models.DateOnly(today)
	for _, task := range tasks {
		taskDay := models.DateOnly(task.Date)
		switch {
		case taskDay.Before(day):
			buckets.Backlog = append(buckets.Backlog, task)
		case taskDay.After(day):
			buckets.Upcoming = append(buckets.Upcoming, task)
		default:
			buckets.Today = append(buckets.Today, task)
		}
	}
	return buckets, nil
}

// UpdateProgress overwrites ready quantity and status unconditionally.
// There are no transition rules: a complete task can be reopened.
func (s *taskService) UpdateProgress(taskID uint, readyQty int, status string) error {
	if readyQty < 0 {
		return errors.New("ready quantity cannot be negative")
	}
	if !models.ValidStatus(status) {
		return fmt.Errorf("unknown task status %q", status)
	}
	return s.taskRepo.UpdateProgress(taskID, readyQty, status)
}

func (s *taskService) DeleteTask(id uint) error {
	return s.taskRepo.Delete(id)
}
