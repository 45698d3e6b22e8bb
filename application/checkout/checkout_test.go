package checkout_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	appcheckout "github.com/cwagoventures/cosmibeautii-backend/application/checkout"
	"github.com/cwagoventures/cosmibeautii-backend/cmd/config"
	"github.com/cwagoventures/cosmibeautii-backend/constant"
	notifymocks "github.com/cwagoventures/cosmibeautii-backend/mocks/application/checkout"
	sinkmocks "github.com/cwagoventures/cosmibeautii-backend/mocks/thirdparty/appscript"
	"github.com/cwagoventures/cosmibeautii-backend/model"
	cartrepo "github.com/cwagoventures/cosmibeautii-backend/repository/cart"
	sessionrepo "github.com/cwagoventures/cosmibeautii-backend/repository/session"
	utilsContext "github.com/cwagoventures/cosmibeautii-backend/utils/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	app      appcheckout.CheckoutApp
	carts    cartrepo.CartRepository
	sink     *sinkmocks.Client
	notifier *notifymocks.Notifier
	ctx      context.Context
}

func newFixture(t *testing.T) *fixture {
	cfg := &config.Config{
		Checkout: config.CheckoutConfig{
			UnitPrice:     299,
			MaxQuantity:   5,
			PaymentWindow: 30 * time.Minute,
		},
	}

	carts := cartrepo.NewCartRepository()
	sessions := sessionrepo.NewSessionRepository()
	sink := sinkmocks.NewClient(t)
	notifier := notifymocks.NewNotifier(t)

	return &fixture{
		app:      appcheckout.NewCheckoutApp(cfg, sessions, carts, sink, notifier),
		carts:    carts,
		sink:     sink,
		notifier: notifier,
		ctx:      utilsContext.WithSessionID(context.Background(), "sess-1"),
	}
}

func validForm() *model.CheckoutFormRequest {
	return &model.CheckoutFormRequest{
		FullName:     "Juan Dela Cruz",
		Phone:        "09171234567",
		Email:        "juan@example.com",
		Address:      "123 Mabini St",
		Province:     "Metro Manila",
		Municipality: "Manila",
	}
}

func TestCheckoutApp_Begin_Defaults(t *testing.T) {
	f := newFixture(t)

	res, err := f.app.Begin(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, constant.PhaseForm, res.Phase)
	assert.Equal(t, 1, res.Quantity)
	assert.Equal(t, int64(299), res.UnitPrice)
	assert.Equal(t, int64(299), res.TotalPrice)
	assert.Equal(t, "Metro Manila", res.Province)
	assert.Equal(t, constant.PaymentGCash, res.PaymentMethod)
	assert.Equal(t, 1800, res.CountdownSeconds)
	assert.Empty(t, res.OrderNumber)
	assert.Equal(t, constant.Provinces(), res.AvailableProvinces)
	assert.Contains(t, res.AvailableProvinces, "Metro Manila")
	assert.NotEmpty(t, res.AvailableMunicipalities)
}

func TestCheckoutApp_Begin_SeedsFromCart(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.carts.Save(f.ctx, "sess-1", []model.CartItem{
		{ProductID: 7, Name: "Volcanic Mud Scrub", UnitPrice: 250, Quantity: 9},
	}))

	res, err := f.app.Begin(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, "Volcanic Mud Scrub", res.ProductName)
	assert.Equal(t, int64(250), res.UnitPrice)
	// Cart quantity beyond the checkout cap is clamped on seeding.
	assert.Equal(t, 5, res.Quantity)
	assert.Equal(t, int64(1250), res.TotalPrice)
}

func TestCheckoutApp_SubmitForm_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *model.CheckoutFormRequest)
		wantMsg string
	}{
		{
			name:    "blank full name",
			mutate:  func(req *model.CheckoutFormRequest) { req.FullName = "   " },
			wantMsg: "Please enter your full name",
		},
		{
			name:    "phone with only 10 digits",
			mutate:  func(req *model.CheckoutFormRequest) { req.Phone = "0917123456" },
			wantMsg: "Please enter a valid phone number (e.g., 09XXXXXXXXX)",
		},
		{
			name:    "phone with wrong prefix",
			mutate:  func(req *model.CheckoutFormRequest) { req.Phone = "08171234567" },
			wantMsg: "Please enter a valid phone number (e.g., 09XXXXXXXXX)",
		},
		{
			name:    "email without dot in domain",
			mutate:  func(req *model.CheckoutFormRequest) { req.Email = "a@b" },
			wantMsg: "Please enter a valid email address",
		},
		{
			name:    "blank address",
			mutate:  func(req *model.CheckoutFormRequest) { req.Address = "" },
			wantMsg: "Please enter your shipping address",
		},
		{
			name:    "municipality missing",
			mutate:  func(req *model.CheckoutFormRequest) { req.Municipality = "" },
			wantMsg: "Please select your municipality",
		},
		{
			name: "municipality from another province",
			mutate: func(req *model.CheckoutFormRequest) {
				req.Province = "Cebu"
				req.Municipality = "Manila"
			},
			wantMsg: "Please select your municipality",
		},
		{
			name: "first failing rule wins",
			mutate: func(req *model.CheckoutFormRequest) {
				req.FullName = ""
				req.Phone = "123"
				req.Email = "nope"
			},
			wantMsg: "Please enter your full name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			begun, err := f.app.Begin(f.ctx)
			require.NoError(t, err)

			req := validForm()
			tt.mutate(req)

			_, err = f.app.SubmitForm(f.ctx, begun.CheckoutID, req)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())

			// A failed validation never advances the phase.
			cur, err := f.app.Get(f.ctx, begun.CheckoutID)
			require.NoError(t, err)
			assert.Equal(t, constant.PhaseForm, cur.Phase)
		})
	}
}

func TestCheckoutApp_SubmitForm_ValidPhonePasses(t *testing.T) {
	f := newFixture(t)
	begun, err := f.app.Begin(f.ctx)
	require.NoError(t, err)

	req := validForm()
	req.Phone = "09171234567"
	req.Email = "a@b.com"

	res, err := f.app.SubmitForm(f.ctx, begun.CheckoutID, req)
	require.NoError(t, err)
	assert.Equal(t, constant.PhaseReview, res.Phase)
	assert.True(t, strings.HasPrefix(res.OrderNumber, "PH-VOLCANO-"))
}

func TestCheckoutApp_OrderNumber_GeneratedOncePerDraft(t *testing.T) {
	f := newFixture(t)
	begun, err := f.app.Begin(f.ctx)
	require.NoError(t, err)

	first, err := f.app.SubmitForm(f.ctx, begun.CheckoutID, validForm())
	require.NoError(t, err)
	require.NotEmpty(t, first.OrderNumber)

	// Edit and resubmit keeps the reference.
	_, err = f.app.EditDetails(f.ctx, begun.CheckoutID)
	require.NoError(t, err)

	second, err := f.app.SubmitForm(f.ctx, begun.CheckoutID, validForm())
	require.NoError(t, err)
	assert.Equal(t, first.OrderNumber, second.OrderNumber)
}

func TestCheckoutApp_SelectProvince_ResetsMunicipality(t *testing.T) {
	f := newFixture(t)
	begun, err := f.app.Begin(f.ctx)
	require.NoError(t, err)

	res, err := f.app.SelectProvince(f.ctx, begun.CheckoutID, "Cebu")
	require.NoError(t, err)

	assert.Equal(t, "Cebu", res.Province)
	assert.Equal(t, constant.Municipalities("Cebu")[0], res.Municipality)
	assert.Equal(t, constant.Municipalities("Cebu"), res.AvailableMunicipalities)
}

func TestCheckoutApp_SetQuantity_Clamps(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     int
	}{
		{name: "decrement floors at one", quantity: 0, want: 1},
		{name: "negative floors at one", quantity: -3, want: 1},
		{name: "increment ceilings at five", quantity: 6, want: 5},
		{name: "way past the ceiling", quantity: 99, want: 5},
		{name: "in range untouched", quantity: 3, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			begun, err := f.app.Begin(f.ctx)
			require.NoError(t, err)

			res, err := f.app.SetQuantity(f.ctx, begun.CheckoutID, tt.quantity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Quantity)
			assert.Equal(t, int64(299*tt.want), res.TotalPrice)
		})
	}
}

func TestCheckoutApp_CODPricing(t *testing.T) {
	f := newFixture(t)
	// Seed a cart so the draft totals exactly 1000.
	require.NoError(t, f.carts.Save(f.ctx, "sess-1", []model.CartItem{
		{ProductID: 1, Name: "Scrub", UnitPrice: 200, Quantity: 5},
	}))

	begun, err := f.app.Begin(f.ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1000), begun.TotalPrice)

	res, err := f.app.SelectPaymentMethod(f.ctx, begun.CheckoutID, constant.PaymentCOD)
	require.NoError(t, err)

	assert.Equal(t, int64(200), res.DownPayment)
	assert.Equal(t, int64(800), res.Balance)
}

func TestCheckoutApp_GCashHasNoSplit(t *testing.T) {
	f := newFixture(t)
	begun, err := f.app.Begin(f.ctx)
	require.NoError(t, err)

	assert.Zero(t, begun.DownPayment)
	assert.Zero(t, begun.Balance)
}

func TestCheckoutApp_Confirm_FailureStaysInReview(t *testing.T) {
	f := newFixture(t)
	begun, err := f.app.Begin(f.ctx)
	require.NoError(t, err)

	form := validForm()
	_, err = f.app.SubmitForm(f.ctx, begun.CheckoutID, form)
	require.NoError(t, err)

	f.sink.On("Submit", mock.Anything, mock.Anything).
		Return(nil, errors.New("Failed to submit order. Please try again.")).
		Once()

	_, err = f.app.Confirm(f.ctx, begun.CheckoutID)
	require.Error(t, err)
	assert.NotEmpty(t, err.Error())

	// Still in review, draft untouched.
	cur, err := f.app.Get(f.ctx, begun.CheckoutID)
	require.NoError(t, err)
	assert.Equal(t, constant.PhaseReview, cur.Phase)
	assert.Equal(t, form.FullName, cur.FullName)
	assert.Equal(t, form.Phone, cur.Phone)
	assert.Equal(t, form.Email, cur.Email)
	assert.Equal(t, form.Address, cur.Address)
	assert.Equal(t, form.Municipality, cur.Municipality)
}

func TestCheckoutApp_Confirm_Success(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.carts.Save(f.ctx, "sess-1", []model.CartItem{
		{ProductID: 1, Name: "Volcanic Mud Scrub", UnitPrice: 299, Quantity: 2},
	}))

	begun, err := f.app.Begin(f.ctx)
	require.NoError(t, err)

	_, err = f.app.SubmitForm(f.ctx, begun.CheckoutID, validForm())
	require.NoError(t, err)

	f.sink.On("Submit", mock.Anything, mock.MatchedBy(func(payload *model.OrderPayload) bool {
		return payload.Quantity == 2 &&
			payload.TotalPrice == 598 &&
			payload.City == "Manila, Metro Manila" &&
			strings.HasPrefix(payload.OrderNumber, "PH-VOLCANO-")
	})).Return(&model.OrderConfirmation{OrderID: "PH-VOLCANO-TEST"}, nil).Once()

	f.notifier.On("OrderConfirmed", mock.Anything, mock.MatchedBy(func(msg *model.OrderConfirmedMessage) bool {
		return msg.FullName == "Juan Dela Cruz" && msg.TotalPrice == 598
	})).Once()

	res, err := f.app.Confirm(f.ctx, begun.CheckoutID)
	require.NoError(t, err)
	assert.Equal(t, constant.PhaseSuccess, res.Phase)
	assert.True(t, res.Celebrate)

	// The celebration fires exactly once; later reads are quiet.
	cur, err := f.app.Get(f.ctx, begun.CheckoutID)
	require.NoError(t, err)
	assert.False(t, cur.Celebrate)

	// The cart that produced the order is cleared.
	items, err := f.carts.Get(f.ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	// Reopening checkout starts a fresh draft with defaults.
	require.NoError(t, f.app.Close(f.ctx, begun.CheckoutID))
	fresh, err := f.app.Begin(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, constant.PhaseForm, fresh.Phase)
	assert.Equal(t, 1, fresh.Quantity)
	assert.Empty(t, fresh.FullName)
	assert.Empty(t, fresh.OrderNumber)
}

func TestCheckoutApp_PaymentSelectorFlow(t *testing.T) {
	f := newFixture(t)
	begun, err := f.app.Begin(f.ctx)
	require.NoError(t, err)

	_, err = f.app.SubmitForm(f.ctx, begun.CheckoutID, validForm())
	require.NoError(t, err)

	res, err := f.app.ProceedToPayment(f.ctx, begun.CheckoutID)
	require.NoError(t, err)
	require.Equal(t, constant.PhasePayment, res.Phase)

	// Back leaves the selector for the form.
	res, err = f.app.BackToForm(f.ctx, begun.CheckoutID)
	require.NoError(t, err)
	assert.Equal(t, constant.PhaseForm, res.Phase)

	// Forward again and confirm from the selector.
	_, err = f.app.SubmitForm(f.ctx, begun.CheckoutID, validForm())
	require.NoError(t, err)
	_, err = f.app.ProceedToPayment(f.ctx, begun.CheckoutID)
	require.NoError(t, err)

	f.sink.On("Submit", mock.Anything, mock.Anything).
		Return(&model.OrderConfirmation{OrderID: "PH-VOLCANO-TEST"}, nil).Once()
	f.notifier.On("OrderConfirmed", mock.Anything, mock.Anything).Once()

	res, err = f.app.Confirm(f.ctx, begun.CheckoutID)
	require.NoError(t, err)
	assert.Equal(t, constant.PhaseSuccess, res.Phase)
}

func TestCheckoutApp_Confirm_RequiresReviewOrPayment(t *testing.T) {
	f := newFixture(t)
	begun, err := f.app.Begin(f.ctx)
	require.NoError(t, err)

	_, err = f.app.Confirm(f.ctx, begun.CheckoutID)
	assert.Error(t, err)
}

func TestCheckoutApp_UnknownSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.Get(f.ctx, "no-such-checkout")
	assert.Error(t, err)
}

func TestCheckoutApp_OtherSessionCannotTouch(t *testing.T) {
	f := newFixture(t)
	begun, err := f.app.Begin(f.ctx)
	require.NoError(t, err)

	otherCtx := utilsContext.WithSessionID(context.Background(), "sess-2")
	_, err = f.app.Get(otherCtx, begun.CheckoutID)
	assert.Error(t, err)
}
