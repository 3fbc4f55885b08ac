package repository

import (
	"time"

	"opsboard/internal/models"

	"gorm.io/gorm"
)

type TaskRepository interface {
	Create(task *models.Task) error
	GetByID(id uint) (*models.Task, error)
	GetByKind(kind string) ([]models.Task, error)
	GetByKindAndStatus(kind, status string) ([]models.Task, error)
	GetOpenByKind(kind string) ([]models.Task, error)
	GetByKindAndDateRange(kind string, start, end time.Time) ([]models.Task, error)
	UpdateProgress(taskID uint, readyQty int, status string) error
	Delete(id uint) error
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

func (r *taskRepository) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetByKind(kind string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("kind = ?", kind).Order("priority asc, date asc").Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) GetByKindAndStatus(kind, status string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("kind = ? AND status = ?", kind, status).Order("priority asc, date asc").Find(&tasks).Error
	return tasks, err
}

// GetOpenByKind returns every task of the kind that is not complete, in
// display order (priority first, then date).
func (r *taskRepository) GetOpenByKind(kind string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("kind = ? AND status <> ?", kind, string(models.StatusComplete)).
		Order("priority asc, date asc").Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) GetByKindAndDateRange(kind string, start, end time.Time) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("kind = ? AND date BETWEEN ? AND ?", kind, start, end).
		Order("date asc").Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) UpdateProgress(taskID uint, readyQty int, status string) error {
	result := r.db.Model(&models.Task{}).Where("id = ?", taskID).Updates(map[string]interface{}{
		"ready_qty":  readyQty,
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *taskRepository) Delete(id uint) error {
	return r.db.Delete(&models.Task{}, id).Error
}
