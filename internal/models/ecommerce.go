package models

import "time"

// EcommerceLog is one day's sales figures for a single channel. Append-only.
type EcommerceLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Date       time.Time `json:"date" gorm:"type:date;not null"`
	Channel    string    `json:"channel" gorm:"not null"`
	Orders     int       `json:"orders"`
	Dispatches int       `json:"dispatches"`
	Returns    int       `json:"returns"`
	CreatedBy  uint      `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}
