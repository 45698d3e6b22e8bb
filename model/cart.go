package model

// CartItem is one line of a session cart. Prices are whole pesos.
type CartItem struct {
	ProductID uint64 `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	ImageRef  string `json:"image"`
}

// CartSnapshot is a cart read with its total recomputed from current items.
type CartSnapshot struct {
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
}

// AddCartItemRequest adds (or merges) a line into the session cart.
type AddCartItemRequest struct {
	ProductID uint64 `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	UnitPrice int64  `json:"price" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	ImageRef  string `json:"image"`
}

// SetCartQuantityRequest replaces a line's quantity; zero or negative removes
// the line.
type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}
