package checkoutControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Themorocd/ShopFast/models"
)

// ErrCartEmpty aborts the checkout transaction before any order rows are
// written; the rollback also undoes a lazily created cart row.
var ErrCartEmpty = errors.New("cart is empty")

// POST /api/checkout/start
//
// Converts the caller's cart into a pending order: reads the cart items,
// sums the snapshotted prices, writes the order header and one line per
// item, then empties the cart. All of it commits or rolls back together.
func StartCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var order models.Order
		err := db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
				return err
			}

			var items []models.CartItem
			if err := tx.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
				return err
			}
			if len(items) == 0 {
				return ErrCartEmpty
			}

			total := decimal.Zero
			for _, it := range items {
				total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
			}

			order = models.Order{
				UserID: userID,
				Total:  total,
				Status: models.OrderStatusPending,
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

			return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
		})

		if errors.Is(err, ErrCartEmpty) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ErrCartEmpty.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order created",
			"order":   order,
		})
	}
}

type ConfirmMockPaymentRequest struct {
	OrderID uint `json:"order_id" binding:"required"`
}

// POST /api/checkout/pay/mock/confirm
//
// Records an always-approved mock payment against an existing order and
// marks the order paid. This path exists so the flow can be exercised
// without a real gateway.
func ConfirmMockPayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ConfirmMockPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, req.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		payment := models.Payment{
			OrderID:       order.ID,
			Method:        models.PaymentMethodMock,
			Status:        models.PaymentStatusApproved,
			TransactionID: "MOCK-" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		}
		if err := db.Create(&payment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		order.Status = models.OrderStatusPaid
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Simulated payment approved",
			"order":   order,
		})
	}
}

// POST /api/checkout/paypal/create
//
// Sandbox placeholder kept alongside the live adapter in the payment
// controllers: it returns a canned order so the frontend flow can be
// walked without PayPal credentials.
func CreatePayPalOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"order_id":     "TEST_ORDER_ID",
			"approval_url": "https://www.sandbox.paypal.com/checkoutnow?token=TEST_ORDER_ID",
		})
	}
}

type CapturePayPalRequest struct {
	OrderID       uint   `json:"order_id" binding:"required"`
	PayPalOrderID string `json:"paypal_order_id" binding:"required"`
}

// POST /api/checkout/paypal/capture
//
// Records an approved PayPal payment for an existing order using the
// external order id as transaction reference, then marks the order paid.
func CapturePayPalOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CapturePayPalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, req.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		payment := models.Payment{
			OrderID:       order.ID,
			Method:        models.PaymentMethodPayPal,
			Status:        models.PaymentStatusApproved,
			TransactionID: req.PayPalOrderID,
		}
		if err := db.Create(&payment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		order.Status = models.OrderStatusPaid
		if err := db.Save(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "PayPal (sandbox) payment approved",
			"order":   order,
		})
	}
}
