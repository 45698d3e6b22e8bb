package model

import (
	"math"
	"time"

	"github.com/cwagoventures/cosmibeautii-backend/constant"
)

// OrderDraft is the in-progress order owned by one checkout session.
type OrderDraft struct {
	FullName      string
	Phone         string
	Email         string
	Address       string
	Province      string
	Municipality  string
	Notes         string
	ProductID     uint64
	ProductName   string
	UnitPrice     int64
	Quantity      int
	PaymentMethod constant.PaymentMethod
	OrderNumber   string
	ImageURL      string
}

// TotalPrice is always derived, never stored.
func (d *OrderDraft) TotalPrice() int64 {
	return d.UnitPrice * int64(d.Quantity)
}

// DownPayment is the COD up-front amount, 20% of the total rounded to the
// nearest peso. Zero for non-COD drafts.
func (d *OrderDraft) DownPayment() int64 {
	if d.PaymentMethod != constant.PaymentCOD {
		return 0
	}
	return int64(math.Round(float64(d.TotalPrice()) * constant.CODDownPaymentRate))
}

// Balance is the remainder due on delivery for COD drafts.
func (d *OrderDraft) Balance() int64 {
	if d.PaymentMethod != constant.PaymentCOD {
		return 0
	}
	return d.TotalPrice() - d.DownPayment()
}

// CheckoutSession wraps one draft with its phase. The countdown is cosmetic:
// nothing expires or blocks when it runs out.
type CheckoutSession struct {
	ID               string
	OwnerSessionID   string
	Phase            constant.CheckoutPhase
	Draft            OrderDraft
	CountdownSeconds int
	Submitting       bool
	CelebrationFired bool
	LastError        string
	CreatedAt        time.Time
}

// CheckoutFormRequest carries the customer form. Field order matches the
// validation order; the first failing rule's message is the one surfaced.
type CheckoutFormRequest struct {
	FullName     string `json:"fullName" validate:"notblank"`
	Phone        string `json:"phone" validate:"phmobile"`
	Email        string `json:"email" validate:"emailshape"`
	Address      string `json:"address" validate:"notblank"`
	Province     string `json:"province"`
	Municipality string `json:"municipality" validate:"notblank"`
	Notes        string `json:"notes"`
}

// SelectProvinceRequest switches the draft province; the municipality resets
// to the first entry of the new province's list.
type SelectProvinceRequest struct {
	Province string `json:"province" validate:"required"`
}

// SetDraftQuantityRequest adjusts the draft quantity, clamped server-side.
type SetDraftQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SelectPaymentMethodRequest switches between gcash and cod.
type SelectPaymentMethodRequest struct {
	PaymentMethod constant.PaymentMethod `json:"paymentMethod" validate:"required,oneof=gcash cod"`
}

// CheckoutSessionResponse is the transport view of a session.
type CheckoutSessionResponse struct {
	CheckoutID              string                 `json:"checkout_id"`
	Phase                   constant.CheckoutPhase `json:"phase"`
	FullName                string                 `json:"fullName"`
	Phone                   string                 `json:"phone"`
	Email                   string                 `json:"email"`
	Address                 string                 `json:"address"`
	Province                string                 `json:"province"`
	Municipality            string                 `json:"municipality"`
	Notes                   string                 `json:"notes"`
	ProductName             string                 `json:"productName"`
	UnitPrice               int64                  `json:"unitPrice"`
	Quantity                int                    `json:"quantity"`
	TotalPrice              int64                  `json:"totalPrice"`
	PaymentMethod           constant.PaymentMethod `json:"paymentMethod"`
	DownPayment             int64                  `json:"downPayment,omitempty"`
	Balance                 int64                  `json:"balance,omitempty"`
	OrderNumber             string                 `json:"orderNumber,omitempty"`
	CountdownSeconds        int                    `json:"countdown_seconds"`
	AvailableProvinces      []string               `json:"availableProvinces"`
	AvailableMunicipalities []string               `json:"availableMunicipalities"`
	Celebrate               bool                   `json:"celebrate,omitempty"`
}
