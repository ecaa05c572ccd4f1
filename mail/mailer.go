package mail

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email over SMTP. It is constructed in main
// and injected into the handlers that send mail. Every send failure is the
// caller's to log; none of them should fail a request.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailerFromEnv reads SMTP_HOST, SMTP_PORT, SMTP_USER and SMTP_PASS.
// With no host configured the mailer still constructs; sends then fail
// with an error the caller logs, which keeps local setups working.
func NewMailerFromEnv() *Mailer {
	host := os.Getenv("SMTP_HOST")
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")

	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
	}
}

func (m *Mailer) send(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "ShopFast")
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)
	return m.dialer.DialAndSend(msg)
}

// SendVerification mails the account-verification link to a new user.
func (m *Mailer) SendVerification(to, name, link string) error {
	html := fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; padding:20px;">
	  <h2 style="color:#198754;">ShopFast</h2>
	  <p>Hello <strong>%s</strong>,</p>
	  <p>Thanks for registering at ShopFast. Please confirm your email address
	  before signing in.</p>
	  <p><a href="%s" style="display:inline-block;padding:12px 24px;background-color:#198754;color:#ffffff;text-decoration:none;border-radius:6px;">Verify my account</a></p>
	  <p style="font-size:13px;color:#555;">If the button does not work, open this link: <a href="%s">%s</a></p>
	  <p style="font-size:12px;color:#999;">If you did not create this account, ignore this message.</p>
	</div>`, name, link, link, link)

	return m.send(to, "Verify your ShopFast account", html)
}

// OrderItemSummary is one line of the order-confirmation email.
type OrderItemSummary struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// SendOrderConfirmation mails the order summary after a captured payment.
func (m *Mailer) SendOrderConfirmation(to, name, transactionID string, items []OrderItemSummary, total decimal.Decimal) error {
	var rows strings.Builder
	for _, it := range items {
		subtotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		fmt.Fprintf(&rows, `
		  <tr>
		    <td style="padding:8px 12px;border-bottom:1px solid #eee;">%s</td>
		    <td style="padding:8px 12px;border-bottom:1px solid #eee;text-align:center;">%d</td>
		    <td style="padding:8px 12px;border-bottom:1px solid #eee;text-align:right;">%s &euro;</td>
		    <td style="padding:8px 12px;border-bottom:1px solid #eee;text-align:right;">%s &euro;</td>
		  </tr>`, it.Name, it.Quantity, it.UnitPrice.StringFixed(2), subtotal.StringFixed(2))
	}

	html := fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; padding:20px;">
	  <h2 style="color:#198754;">ShopFast</h2>
	  <p>Hello <strong>%s</strong>,</p>
	  <p>Thanks for your purchase. Your order has been confirmed.</p>
	  <p style="font-size:14px;color:#555;"><strong>Transaction ID:</strong> %s</p>
	  <table style="width:100%%;border-collapse:collapse;">
	    <thead>
	      <tr>
	        <th style="text-align:left;padding:8px 12px;border-bottom:2px solid #198754;">Product</th>
	        <th style="text-align:center;padding:8px 12px;border-bottom:2px solid #198754;">Quantity</th>
	        <th style="text-align:right;padding:8px 12px;border-bottom:2px solid #198754;">Price</th>
	        <th style="text-align:right;padding:8px 12px;border-bottom:2px solid #198754;">Subtotal</th>
	      </tr>
	    </thead>
	    <tbody>%s</tbody>
	  </table>
	  <p style="text-align:right;font-size:16px;"><strong>Total: %s &euro;</strong></p>
	</div>`, name, transactionID, rows.String(), total.StringFixed(2))

	return m.send(to, "Order confirmation - ShopFast", html)
}
