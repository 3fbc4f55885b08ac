package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Username     string         `json:"username" gorm:"unique;not null"` // stored lowercased
	PasswordHash string         `json:"-" gorm:"not null"`
	DisplayName  string         `json:"display_name"`
	Role         string         `json:"role" gorm:"default:'production'"` // admin, production, packing, store, ecommerce
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleProduction UserRole = "production"
	RolePacking    UserRole = "packing"
	RoleStore      UserRole = "store"
	RoleEcommerce  UserRole = "ecommerce"
)
