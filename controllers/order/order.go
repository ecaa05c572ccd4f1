package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Themorocd/ShopFast/models"
)

// LineItemInput is one product line supplied by a payment caller. The unit
// price is trusted as sent: it is the snapshot the cart captured, not the
// current catalog price.
type LineItemInput struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type SimulatedPayRequest struct {
	Items []LineItemInput `json:"items"`
}

// ComputeTotal sums quantity × unit price over the items in input order.
func ComputeTotal(items []LineItemInput) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// CreateOrderWithPayment persists an order, its lines and its payment row
// as one atomic unit. The caller has already confirmed the payment out of
// band, so the order is created as paid. On any failure every write of
// this call is rolled back and the error is returned untouched.
func CreateOrderWithPayment(db *gorm.DB, userID uint, items []LineItemInput, method models.PaymentMethod, payStatus models.PaymentStatus, transactionID string) (*models.Order, decimal.Decimal, error) {
	total := ComputeTotal(items)

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		order = models.Order{
			UserID: userID,
			Total:  total,
			Status: models.OrderStatusPaid,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, it := range items {
			line := models.OrderLine{
				OrderID:   order.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}

		payment := models.Payment{
			OrderID:       order.ID,
			Method:        method,
			Status:        payStatus,
			TransactionID: transactionID,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, decimal.Zero, err
	}
	return &order, total, nil
}

// POST /api/orders/simulated-pay
func SimulatedPayHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var req SimulatedPayRequest
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty or invalid"})
			return
		}

		transactionID := "MOCK-" + uuid.NewString()

		order, total, err := CreateOrderWithPayment(db, userID, req.Items,
			models.PaymentMethodMock, models.PaymentStatusApproved, transactionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":        "Order created and simulated payment recorded",
			"order":          order,
			"total":          total,
			"transaction_id": transactionID,
		})
	}
}

// GET /api/orders/my
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Payment").
			Preload("Lines").
			Preload("Lines.Product").
			Order("id DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}
