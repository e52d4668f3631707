package domain

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/storefront/pkg/apperr"
)

func at(stage int, status Status) Order {
	return Order{ID: "abcdef1234567890", UserID: "u1", DeliveryOption: Stages[stage], Status: status}
}

func TestCanCancel(t *testing.T) {
	cases := []struct {
		name  string
		order Order
		want  bool
	}{
		{"stage 1 pending -> yes", at(0, StatusPending), true},
		{"stage 2 processing -> yes", at(1, StatusProcessing), true},
		{"stage 3 -> no", at(2, StatusPending), false},
		{"stage 1 shipped -> no", at(0, StatusShipped), false},
		{"stage 2 cancelled -> no", at(1, StatusCancelled), false},
		{"stage 1 delivered -> no", at(0, StatusDelivered), false},
		{"stage 1 confirmed -> no", at(0, StatusDeliveredConfirmed), false},
		{"unknown stage -> no", Order{DeliveryOption: "soon", Status: StatusPending}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.order.CanCancel())
		})
	}
}

func TestCanConfirmReceived(t *testing.T) {
	assert.True(t, at(4, StatusDelivered).CanConfirmReceived())
	assert.True(t, at(4, StatusShipped).CanConfirmReceived())
	assert.False(t, at(3, StatusDelivered).CanConfirmReceived())
	assert.False(t, at(4, StatusDeliveredConfirmed).CanConfirmReceived())
	assert.False(t, at(4, StatusCancelled).CanConfirmReceived())
}

func TestProgress(t *testing.T) {
	t.Run("in transit -> done, current, pending", func(t *testing.T) {
		steps := at(2, StatusShipped).Progress()
		require.Len(t, steps, len(Stages))
		assert.Equal(t, []StepState{StepDone, StepDone, StepCurrent, StepPending, StepPending},
			[]StepState{steps[0].State, steps[1].State, steps[2].State, steps[3].State, steps[4].State})
	})

	t.Run("cancelled -> every step cancelled", func(t *testing.T) {
		for _, s := range at(1, StatusCancelled).Progress() {
			assert.Equal(t, StepCancelled, s.State)
		}
	})

	t.Run("confirmed -> every step confirmed", func(t *testing.T) {
		for _, s := range at(4, StatusDeliveredConfirmed).Progress() {
			assert.Equal(t, StepConfirmed, s.State)
		}
	})
}

func TestOrderDecodesPopulatedUser(t *testing.T) {
	raw := `{"_id":"o1","userId":{"_id":"u9","username":"amy"},"totalPrice":12.5,
		"orderStatus":"Pending","products":[{"productId":"p1","name":"Tee","quantity":2,"price":6.25}]}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(raw), &o))
	assert.True(t, o.OwnedBy("u9"))
	assert.False(t, o.OwnedBy(""))
	assert.True(t, o.Contains("p1"))
	assert.True(t, o.Products[0].Subtotal().Equal(decimal.RequireFromString("12.5")))
}

func TestReceipt(t *testing.T) {
	o := at(4, StatusDeliveredConfirmed)
	o.CreatedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	o.TotalPrice = decimal.RequireFromString("20")
	o.PaymentMethod = DefaultPaymentMethod
	o.ShippingAddress = ShippingAddress{PersonName: "Amy <3", Pincode: "560001"}
	o.Products = []Line{{Name: "Tee", Quantity: 2, Price: decimal.NewFromInt(10)}}

	t.Run("filename uses short id", func(t *testing.T) {
		assert.Equal(t, "order_receipt_abcdef12.html", ReceiptFilename(o))
	})

	t.Run("confirmed -> rendered and escaped", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReceipt(&buf, o))
		out := buf.String()
		assert.Contains(t, out, "Order Receipt #abcdef12")
		assert.Contains(t, out, "₹20.00")
		assert.Contains(t, out, "Amy &lt;3")
		assert.Contains(t, out, "Cash on Delivery")
	})

	t.Run("not confirmed -> invalid", func(t *testing.T) {
		err := WriteReceipt(&bytes.Buffer{}, at(4, StatusDelivered))
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})
}
