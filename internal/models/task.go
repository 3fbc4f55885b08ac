package models

import (
	"time"

	"gorm.io/gorm"
)

type Task struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Kind      string    `json:"kind" gorm:"not null;index"` // production, packing
	Date      time.Time `json:"date" gorm:"type:date;not null"`
	ItemName  string    `json:"item_name" gorm:"not null"`
	TargetQty int       `json:"target_qty" gorm:"not null"`
	ReadyQty  int       `json:"ready_qty" gorm:"default:0"`
	Priority  int       `json:"priority" gorm:"default:3"`       // 1 (highest) to 3
	Status    string    `json:"status" gorm:"default:'pending'"` // pending, in_progress, hold, complete
	Notes     string    `json:"notes"`

	// Packing-only fields, empty for production tasks.
	PartyName   string `json:"party_name"`
	BoxType     string `json:"box_type"`
	LogoStatus  string `json:"logo_status"`
	BottomPrint string `json:"bottom_print"`

	CreatedBy uint           `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type TaskKind string

const (
	KindProduction TaskKind = "production"
	KindPacking    TaskKind = "packing"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusHold       TaskStatus = "hold"
	StatusComplete   TaskStatus = "complete"
)

// ValidStatus reports whether s is one of the known task statuses.
func ValidStatus(s string) bool {
	switch TaskStatus(s) {
	case StatusPending, StatusInProgress, StatusHold, StatusComplete:
		return true
	}
	return false
}

// ValidKind reports whether k names a task collection.
func ValidKind(k string) bool {
	return TaskKind(k) == KindProduction || TaskKind(k) == KindPacking
}

// DateOnly truncates t to its calendar day. All date bucketing compares
// the results of DateOnly, never raw timestamps or strings.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
