package paymentControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Themorocd/ShopFast/controllers/order"
	"github.com/Themorocd/ShopFast/mail"
	"github.com/Themorocd/ShopFast/models"
	"github.com/Themorocd/ShopFast/payments"
)

type CreatePayPalOrderRequest struct {
	Items []orderControllers.LineItemInput `json:"items"`
}

// POST /api/payments/paypal/create-order
//
// Totals the submitted cart lines and creates a CAPTURE-intent order on
// the PayPal sandbox. The frontend redirects the buyer with the returned
// order id.
func CreatePayPalOrder(pp *payments.PayPalClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePayPalOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty or invalid"})
			return
		}

		total := orderControllers.ComputeTotal(req.Items)

		order, err := pp.CreateOrder(c.Request.Context(), total)
		if err != nil {
			log.Printf("failed to create PayPal order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create PayPal order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order_id": order.ID})
	}
}

type CapturePayPalOrderRequest struct {
	OrderID string                           `json:"order_id" binding:"required"`
	Items   []orderControllers.LineItemInput `json:"items"`
}

// POST /api/payments/paypal/capture
//
// Captures the approved PayPal order, then persists order + lines +
// payment through the transactional core. The confirmation email is best
// effort: a send failure is logged and never fails the payment response.
func CapturePayPalOrder(db *gorm.DB, pp *payments.PayPalClient, mailer *mail.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var req CapturePayPalOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing order_id"})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty or invalid"})
			return
		}

		capture, err := pp.CaptureOrder(c.Request.Context(), req.OrderID)
		if err != nil {
			log.Printf("failed to capture PayPal order %s: %v", req.OrderID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to capture PayPal payment"})
			return
		}

		transactionID := capture.CaptureID()
		if transactionID == "" {
			transactionID = "PAYPAL-" + req.OrderID
		}

		order, total, err := orderControllers.CreateOrderWithPayment(db, userID, req.Items,
			models.PaymentMethodPayPal, models.PaymentStatusApproved, transactionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err == nil {
			summaries := make([]mail.OrderItemSummary, 0, len(req.Items))
			for _, it := range req.Items {
				var product models.Product
				name := ""
				if err := db.First(&product, it.ProductID).Error; err == nil {
					name = product.Name
				}
				summaries = append(summaries, mail.OrderItemSummary{
					Name:      name,
					Quantity:  it.Quantity,
					UnitPrice: it.UnitPrice,
				})
			}
			if err := mailer.SendOrderConfirmation(user.Email, user.Name, transactionID, summaries, total); err != nil {
				log.Printf("failed to send order confirmation to %s: %v", user.Email, err)
			}
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":        "PayPal payment captured and order created",
			"order":          order,
			"total":          total,
			"transaction_id": transactionID,
		})
	}
}
