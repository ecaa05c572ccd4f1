package models

import "time"

type PaymentMethod string

const (
	PaymentMethodPayPal PaymentMethod = "paypal"
	PaymentMethodMock   PaymentMethod = "mock"
)

type PaymentStatus string

const (
	PaymentStatusCreated  PaymentStatus = "created"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusFailed   PaymentStatus = "failed"
)

type Payment struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       uint          `gorm:"index;not null" json:"order_id"`
	Method        PaymentMethod `gorm:"type:VARCHAR(20);not null" json:"method"`
	Status        PaymentStatus `gorm:"type:VARCHAR(20);default:'created'" json:"status"`
	TransactionID string        `json:"transaction_id"` // gateway reference, not unique
	CreatedAt     time.Time     `json:"created_at"`
}
