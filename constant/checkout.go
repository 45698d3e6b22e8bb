package constant

// CheckoutPhase is one step of the checkout flow.
type CheckoutPhase string

const (
	PhaseForm    CheckoutPhase = "form"
	PhaseReview  CheckoutPhase = "review"
	PhasePayment CheckoutPhase = "payment"
	PhaseSuccess CheckoutPhase = "success"
)

type PaymentMethod string

const (
	PaymentGCash PaymentMethod = "gcash"
	PaymentCOD   PaymentMethod = "cod"
)

// OrderNumberPrefix is the customer-facing reference prefix.
const OrderNumberPrefix = "PH-VOLCANO-"

// Fixed single-product fallback used when checkout opens on an empty cart.
const (
	DefaultProductID   uint64 = 1
	DefaultProductName        = "Volcanic Mud Scrub"
)

// CODDownPaymentRate is the fraction of the total due up front for COD.
const CODDownPaymentRate = 0.2

type contextKey string

// SessionIDKey carries the storefront session id through request context.
const SessionIDKey contextKey = "session_id"
