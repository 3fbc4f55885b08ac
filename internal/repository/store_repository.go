package repository

import (
	"opsboard/internal/models"

	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(txn *models.StoreTransaction) error
	GetAll() ([]models.StoreTransaction, error)
	GetByType(txnType string) ([]models.StoreTransaction, error)
	Count() (int64, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(txn *models.StoreTransaction) error {
	return r.db.Create(txn).Error
}

func (r *storeRepository) GetAll() ([]models.StoreTransaction, error) {
	var txns []models.StoreTransaction
	err := r.db.Order("date desc, id desc").Find(&txns).Error
	return txns, err
}

func (r *storeRepository) GetByType(txnType string) ([]models.StoreTransaction, error) {
	var txns []models.StoreTransaction
	err := r.db.Where("type = ?", txnType).Order("date desc, id desc").Find(&txns).Error
	return txns, err
}

func (r *storeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.StoreTransaction{}).Count(&count).Error
	return count, err
}
