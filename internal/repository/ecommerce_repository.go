package repository

import (
	"time"

	"opsboard/internal/models"

	"gorm.io/gorm"
)

type EcommerceRepository interface {
	Create(log *models.EcommerceLog) error
	GetAll() ([]models.EcommerceLog, error)
	GetByDateRange(start, end time.Time) ([]models.EcommerceLog, error)
}

type ecommerceRepository struct {
	db *gorm.DB
}

func NewEcommerceRepository(db *gorm.DB) EcommerceRepository {
	return &ecommerceRepository{db: db}
}

func (r *ecommerceRepository) Create(log *models.EcommerceLog) error {
	return r.db.Create(log).Error
}

func (r *ecommerceRepository) GetAll() ([]models.EcommerceLog, error) {
	var logs []models.EcommerceLog
	err := r.db.Order("date desc, id desc").Find(&logs).Error
	return logs, err
}

func (r *ecommerceRepository) GetByDateRange(start, end time.Time) ([]models.EcommerceLog, error) {
	var logs []models.EcommerceLog
	err := r.db.Where("date BETWEEN ? AND ?", start, end).Order("date asc").Find(&logs).Error
	return logs, err
}
