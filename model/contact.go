package model

// ContactRequest is a contact-form message relayed fire-and-forget.
type ContactRequest struct {
	From    string `json:"from" validate:"required"`
	To      string `json:"to" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type ContactResponse struct {
	Message string `json:"message"`
}

// SubscribeRequest signs an address up for the newsletter.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,emailshape"`
}

type SubscribeResponse struct {
	Message string `json:"message"`
}
