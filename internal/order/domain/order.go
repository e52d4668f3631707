package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/storefront/pkg/jsonid"
)

type Status string

const (
	StatusPending            Status = "Pending"
	StatusProcessing         Status = "Processing"
	StatusShipped            Status = "Shipped"
	StatusDelivered          Status = "Delivered"
	StatusDeliveredConfirmed Status = "Delivered & Confirmed"
	StatusCancelled          Status = "Cancelled"
)

// Stages is the fixed delivery progression, earliest first.
var Stages = []string{
	"Option 1 - 5 days to delivery",
	"Option 2 - 3 days to delivery",
	"Option 3 - 2 days to delivery",
	"Option 4 - 1 day to delivery",
	"Option 5 - Arriving Today",
}

type Bucket string

const (
	BucketActive  Bucket = "active"
	BucketHistory Bucket = "history"
)

func (b Bucket) Valid() bool { return b == BucketActive || b == BucketHistory }

type ShippingAddress struct {
	PersonName   string `json:"personName"`
	MobileNumber string `json:"mobileNumber"`
	Address      string `json:"address"`
	Pincode      string `json:"pincode"`
	State        string `json:"state"`
}

type Line struct {
	ProductID     jsonid.ID       `json:"productId"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Image         string          `json:"image,omitempty"`
	SelectedSize  string          `json:"selectedSize,omitempty"`
	SelectedColor string          `json:"selectedColor,omitempty"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Order struct {
	ID              string          `json:"_id"`
	UserID          jsonid.ID       `json:"userId"`
	Products        []Line          `json:"products"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Status          Status          `json:"orderStatus"`
	DeliveryOption  string          `json:"deliveryOption"`
	CreatedAt       time.Time       `json:"createdAt"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	CancelledAt     *time.Time      `json:"cancelledAt,omitempty"`
}

// ShortID is the receipt number shown to customers.
func (o Order) ShortID() string {
	if len(o.ID) <= 8 {
		return o.ID
	}
	return o.ID[:8]
}

// Stage is the zero-based position of the delivery option, or -1.
func (o Order) Stage() int {
	return slices.Index(Stages, o.DeliveryOption)
}

func (o Order) OwnedBy(userID string) bool {
	return userID != "" && o.UserID.String() == userID
}

func (o Order) Contains(productID string) bool {
	return slices.ContainsFunc(o.Products, func(l Line) bool {
		return l.ProductID.String() == productID
	})
}

// CanCancel holds only in the first two stages of an order that has not left
// the warehouse.
func (o Order) CanCancel() bool {
	stage := o.Stage()
	if stage != 0 && stage != 1 {
		return false
	}
	switch o.Status {
	case StatusCancelled, StatusDelivered, StatusDeliveredConfirmed, StatusShipped:
		return false
	}
	return true
}

func (o Order) CanConfirmReceived() bool {
	if o.Stage() != len(Stages)-1 {
		return false
	}
	return o.Status != StatusDeliveredConfirmed && o.Status != StatusCancelled
}

func (o Order) ReceiptAvailable() bool {
	return o.Status == StatusDeliveredConfirmed
}

type StepState string

const (
	StepDone      StepState = "done"
	StepCurrent   StepState = "current"
	StepPending   StepState = "pending"
	StepCancelled StepState = "cancelled"
	StepConfirmed StepState = "confirmed"
)

type Step struct {
	Stage string
	State StepState
}

// Progress renders one step per delivery stage.
func (o Order) Progress() []Step {
	current := o.Stage()
	steps := make([]Step, len(Stages))
	for i, stage := range Stages {
		var state StepState
		switch {
		case o.Status == StatusCancelled:
			state = StepCancelled
		case o.Status == StatusDeliveredConfirmed:
			state = StepConfirmed
		case i < current:
			state = StepDone
		case i == current:
			state = StepCurrent
		default:
			state = StepPending
		}
		steps[i] = Step{Stage: stage, State: state}
	}
	return steps
}
