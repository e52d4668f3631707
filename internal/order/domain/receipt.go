package domain

import (
	"fmt"
	"html/template"
	"io"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/pkg/apperr"
)

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string { return "₹" + d.StringFixed(2) },
}).Parse(`<html>
<head>
<title>Order Receipt #{{.ShortID}}</title>
<style>
body { font-family: sans-serif; line-height: 1.6; color: #333; margin: 20px; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 8px; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: 8px; border-bottom: 1px solid #eee; text-align: left; }
.total-row { font-weight: bold; }
.footer { text-align: center; margin-top: 30px; font-size: 0.9em; color: #777; }
</style>
</head>
<body>
<div class="container">
<h1>Order Receipt</h1>
<p><strong>Order ID:</strong> #{{.ID}}</p>
<p><strong>Date:</strong> {{.CreatedAt.Format "2006-01-02 15:04:05"}}</p>
<h2>Order Summary</h2>
<table>
<thead><tr><th>Product</th><th>Qty</th><th>Price</th><th>Subtotal</th></tr></thead>
<tbody>
{{- range .Products}}
<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{money .Price}}</td><td>{{money .Subtotal}}</td></tr>
{{- end}}
<tr class="total-row"><td colspan="3">Total:</td><td>{{money .TotalPrice}}</td></tr>
</tbody>
</table>
<h2>Shipping Information</h2>
<p><strong>Name:</strong> {{.ShippingAddress.PersonName}}</p>
<p><strong>Mobile:</strong> {{.ShippingAddress.MobileNumber}}</p>
<p><strong>Address:</strong> {{.ShippingAddress.Address}}, {{.ShippingAddress.Pincode}}</p>
<p><strong>State:</strong> {{.ShippingAddress.State}}</p>
<h2>Payment Method</h2>
<p>{{.PaymentMethod}}</p>
<div class="footer"><p>Thank you for your purchase!</p></div>
</div>
</body>
</html>
`))

var ErrNoReceipt = apperr.Invalid("A receipt is available once delivery is confirmed.")

// ReceiptFilename is the name a receipt for o is saved under.
func ReceiptFilename(o Order) string {
	return fmt.Sprintf("order_receipt_%s.html", o.ShortID())
}

// WriteReceipt renders an HTML receipt. Only confirmed deliveries have one.
func WriteReceipt(w io.Writer, o Order) error {
	if !o.ReceiptAvailable() {
		return ErrNoReceipt
	}
	if err := receiptTmpl.Execute(w, o); err != nil {
		return fmt.Errorf("render receipt: %w", err)
	}
	return nil
}
