package models

import "time"

// StoreTransaction is an append-only inward/outward stock movement.
type StoreTransaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Date      time.Time `json:"date" gorm:"type:date;not null"`
	Type      string    `json:"type" gorm:"not null"` // inward, outward
	ItemName  string    `json:"item_name" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Note      string    `json:"note"`
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type StoreTxnType string

const (
	TxnInward  StoreTxnType = "inward"
	TxnOutward StoreTxnType = "outward"
)

func (t *StoreTransaction) SignedQty() int {
	if t.Type == string(TxnOutward) {
		return -t.Quantity
	}
	return t.Quantity
}
