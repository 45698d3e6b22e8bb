package model

// OrderPayload is the shape the Google Apps Script order processor expects,
// posted form-encoded as a single "data" field.
type OrderPayload struct {
	SubmittedAt   string `json:"submittedAt"`
	OrderNumber   string `json:"orderNumber"`
	FullName      string `json:"fullName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Quantity      int    `json:"quantity"`
	TotalPrice    int64  `json:"totalPrice"`
	PaymentMethod string `json:"paymentMethod"`
	CODBalance    string `json:"codBalance"`
	ImageURL      string `json:"imageUrl"`
	Notes         string `json:"notes"`
}

// OrderConfirmation acknowledges an accepted submission.
type OrderConfirmation struct {
	OrderID string `json:"order_id"`
}

// OrderConfirmedMessage is the best-effort email task enqueued after a
// successful submission.
type OrderConfirmedMessage struct {
	OrderNumber   string `json:"order_number"`
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	ProductName   string `json:"product_name"`
	Quantity      int    `json:"quantity"`
	TotalPrice    int64  `json:"total_price"`
	PaymentMethod string `json:"payment_method"`
}
