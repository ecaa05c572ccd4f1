package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // created at checkout, payment not confirmed
	OrderStatusPaid      OrderStatus = "paid"      // payment confirmed
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before payment
)

type Order struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint            `gorm:"index;not null" json:"user_id"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Status    OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Lines     []OrderLine     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
	Payment   *Payment        `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderLine is immutable once written: quantity and unit price are the
// values the order was placed with, regardless of later catalog changes.
type OrderLine struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"order_id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
}
