package models

import "time"

// Order is an append-only movement record. Orders are never updated or
// deleted; pending balances are derived by summing signed quantities.
type Order struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Date      time.Time `json:"date" gorm:"type:date;not null"`
	Type      string    `json:"type" gorm:"not null"` // received, dispatch
	PartyName string    `json:"party_name" gorm:"not null"`
	ItemName  string    `json:"item_name" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderType string

const (
	OrderReceived OrderType = "received"
	OrderDispatch OrderType = "dispatch"
)

// SignedQty maps an order to its ledger contribution: received adds to the
// pending balance, dispatch draws it down.
func (o *Order) SignedQty() int {
	if o.Type == string(OrderDispatch) {
		return -o.Quantity
	}
	return o.Quantity
}
