package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	cartapp "github.com/cwagoventures/cosmibeautii-backend/application/cart"
	checkoutapp "github.com/cwagoventures/cosmibeautii-backend/application/checkout"
	contactapp "github.com/cwagoventures/cosmibeautii-backend/application/contact"
	newsletterapp "github.com/cwagoventures/cosmibeautii-backend/application/newsletter"
	uploadapp "github.com/cwagoventures/cosmibeautii-backend/application/upload"
	"github.com/cwagoventures/cosmibeautii-backend/constant"
	"github.com/cwagoventures/cosmibeautii-backend/model"
	"github.com/cwagoventures/cosmibeautii-backend/utils/errors"
	validatorx "github.com/cwagoventures/cosmibeautii-backend/utils/validator"
)

type RestHandler struct {
	CartApp       cartapp.CartApp
	CheckoutApp   checkoutapp.CheckoutApp
	ContactApp    contactapp.ContactApp
	NewsletterApp newsletterapp.NewsletterApp
	UploadApp     uploadapp.UploadApp
}

func NewTransport(cartApp cartapp.CartApp, checkoutApp checkoutapp.CheckoutApp, contactApp contactapp.ContactApp, newsletterApp newsletterapp.NewsletterApp, uploadApp uploadapp.UploadApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		CartApp:       cartApp,
		CheckoutApp:   checkoutApp,
		ContactApp:    contactApp,
		NewsletterApp: newsletterApp,
		UploadApp:     uploadApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Cart
	mux.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	mux.HandleFunc("/cart/items", rh.AddCartItem).Methods(http.MethodPost)
	mux.HandleFunc("/cart/items/{id}", rh.SetCartQuantity).Methods(http.MethodPut)
	mux.HandleFunc("/cart/items/{id}", rh.RemoveCartItem).Methods(http.MethodDelete)
	mux.HandleFunc("/cart/clear", rh.ClearCart).Methods(http.MethodPost)

	// Checkout
	mux.HandleFunc("/checkout", rh.BeginCheckout).Methods(http.MethodPost)
	mux.HandleFunc("/checkout/{id}", rh.GetCheckout).Methods(http.MethodGet)
	mux.HandleFunc("/checkout/{id}", rh.CloseCheckout).Methods(http.MethodDelete)
	mux.HandleFunc("/checkout/{id}/form", rh.SubmitCheckoutForm).Methods(http.MethodPost)
	mux.HandleFunc("/checkout/{id}/province", rh.SelectProvince).Methods(http.MethodPut)
	mux.HandleFunc("/checkout/{id}/quantity", rh.SetCheckoutQuantity).Methods(http.MethodPut)
	mux.HandleFunc("/checkout/{id}/payment-method", rh.SelectPaymentMethod).Methods(http.MethodPut)
	mux.HandleFunc("/checkout/{id}/payment", rh.ProceedToPayment).Methods(http.MethodPost)
	mux.HandleFunc("/checkout/{id}/confirm", rh.ConfirmCheckout).Methods(http.MethodPost)
	mux.HandleFunc("/checkout/{id}/edit", rh.EditCheckout).Methods(http.MethodPost)
	mux.HandleFunc("/checkout/{id}/back", rh.BackToForm).Methods(http.MethodPost)

	// Integrations
	mux.HandleFunc("/contact", rh.Contact).Methods(http.MethodPost)
	mux.HandleFunc("/subscribe-newsletter", rh.SubscribeNewsletter).Methods(http.MethodPost)
	mux.HandleFunc("/upload-image", rh.UploadImage).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(SessionMiddleware())

	return mux
}

// GetCart handler
// @Summary Get cart
// @Description Returns the session cart with its recomputed total
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Storefront session id"
// @Success 200 {object} model.CartSnapshot
// @Router /cart [get]
func (s *RestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	res, err := s.CartApp.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddCartItem handler
// @Summary Add cart item
// @Description Adds a line to the cart, merging quantity when the product is already present
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body model.AddCartItemRequest true "Cart item"
// @Success 200 {object} model.CartSnapshot
// @Failure 400 {object} errors.CustomError
// @Router /cart/items [post]
func (s *RestHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req model.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.AddItem(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SetCartQuantity handler
// @Summary Set cart line quantity
// @Description Replaces a line's quantity; zero or below removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Product id"
// @Param request body model.SetCartQuantityRequest true "Quantity"
// @Success 200 {object} model.CartSnapshot
// @Router /cart/items/{id} [put]
func (s *RestHandler) SetCartQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.SetCartQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.SetQuantity(r.Context(), productID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CartApp.RemoveItem(r.Context(), productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.CartApp.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// BeginCheckout handler
// @Summary Begin checkout
// @Description Opens a checkout session seeded from the cart, or the default product when the cart is empty
// @Tags Checkout
// @Produce json
// @Param X-Session-ID header string false "Storefront session id"
// @Success 200 {object} model.CheckoutSessionResponse
// @Router /checkout [post]
func (s *RestHandler) BeginCheckout(w http.ResponseWriter, r *http.Request) {
	res, err := s.CheckoutApp.Begin(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	res, err := s.CheckoutApp.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SubmitCheckoutForm handler
// @Summary Submit customer form
// @Description Validates the customer form and advances the session to review; the first failing rule's message is returned
// @Tags Checkout
// @Accept json
// @Produce json
// @Param id path string true "Checkout id"
// @Param request body model.CheckoutFormRequest true "Customer form"
// @Success 200 {object} model.CheckoutSessionResponse
// @Failure 400 {object} errors.CustomError
// @Router /checkout/{id}/form [post]
func (s *RestHandler) SubmitCheckoutForm(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CheckoutApp.SubmitForm(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) SelectProvince(w http.ResponseWriter, r *http.Request) {
	var req model.SelectProvinceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CheckoutApp.SelectProvince(r.Context(), mux.Vars(r)["id"], req.Province)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) SetCheckoutQuantity(w http.ResponseWriter, r *http.Request) {
	var req model.SetDraftQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CheckoutApp.SetQuantity(r.Context(), mux.Vars(r)["id"], req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) SelectPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req model.SelectPaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CheckoutApp.SelectPaymentMethod(r.Context(), mux.Vars(r)["id"], req.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ProceedToPayment(w http.ResponseWriter, r *http.Request) {
	res, err := s.CheckoutApp.ProceedToPayment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ConfirmCheckout handler
// @Summary Confirm order
// @Description Submits the order once; a failed submission keeps the session in place with the error message
// @Tags Checkout
// @Produce json
// @Param id path string true "Checkout id"
// @Success 200 {object} model.CheckoutSessionResponse
// @Failure 502 {object} errors.CustomError
// @Router /checkout/{id}/confirm [post]
func (s *RestHandler) ConfirmCheckout(w http.ResponseWriter, r *http.Request) {
	res, err := s.CheckoutApp.Confirm(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) EditCheckout(w http.ResponseWriter, r *http.Request) {
	res, err := s.CheckoutApp.EditDetails(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) BackToForm(w http.ResponseWriter, r *http.Request) {
	res, err := s.CheckoutApp.BackToForm(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) CloseCheckout(w http.ResponseWriter, r *http.Request) {
	if err := s.CheckoutApp.Close(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// Contact handler
// @Summary Send contact message
// @Tags Integrations
// @Accept json
// @Produce json
// @Param request body model.ContactRequest true "Contact message"
// @Success 200 {object} model.ContactResponse
// @Failure 400 {object} errors.CustomError
// @Router /contact [post]
func (s *RestHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ContactApp.Send(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SubscribeNewsletter handler
// @Summary Subscribe to the newsletter
// @Tags Integrations
// @Accept json
// @Produce json
// @Param request body model.SubscribeRequest true "Subscription"
// @Success 200 {object} model.SubscribeResponse
// @Failure 400 {object} errors.CustomError
// @Router /subscribe-newsletter [post]
func (s *RestHandler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req model.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.NewsletterApp.Subscribe(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UploadImage handler
// @Summary Upload a payment-proof image
// @Tags Integrations
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image file, max 10MB"
// @Success 200 {object} model.UploadResponse
// @Failure 400 {object} errors.CustomError
// @Router /upload-image [post]
func (s *RestHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "No file provided"))
		return
	}
	defer file.Close()

	res, err := s.UploadApp.Store(r.Context(), header.Header.Get("Content-Type"), header.Size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}
