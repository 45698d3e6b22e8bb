package checkout

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cwagoventures/cosmibeautii-backend/cmd/config"
	"github.com/cwagoventures/cosmibeautii-backend/constant"
	"github.com/cwagoventures/cosmibeautii-backend/model"
	cartrepo "github.com/cwagoventures/cosmibeautii-backend/repository/cart"
	sessionrepo "github.com/cwagoventures/cosmibeautii-backend/repository/session"
	"github.com/cwagoventures/cosmibeautii-backend/thirdparty/appscript"
	utilsContext "github.com/cwagoventures/cosmibeautii-backend/utils/context"
	"github.com/cwagoventures/cosmibeautii-backend/utils/errors"
	"github.com/cwagoventures/cosmibeautii-backend/utils/logger"
	validatorx "github.com/cwagoventures/cosmibeautii-backend/utils/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier dispatches the best-effort confirmation email after an accepted
// order. Failure never affects the order.
type Notifier interface {
	OrderConfirmed(ctx context.Context, msg *model.OrderConfirmedMessage)
}

type CheckoutApp interface {
	Begin(ctx context.Context) (*model.CheckoutSessionResponse, error)
	Get(ctx context.Context, checkoutID string) (*model.CheckoutSessionResponse, error)
	SubmitForm(ctx context.Context, checkoutID string, req *model.CheckoutFormRequest) (*model.CheckoutSessionResponse, error)
	SelectProvince(ctx context.Context, checkoutID, province string) (*model.CheckoutSessionResponse, error)
	SetQuantity(ctx context.Context, checkoutID string, quantity int) (*model.CheckoutSessionResponse, error)
	SelectPaymentMethod(ctx context.Context, checkoutID string, method constant.PaymentMethod) (*model.CheckoutSessionResponse, error)
	ProceedToPayment(ctx context.Context, checkoutID string) (*model.CheckoutSessionResponse, error)
	Confirm(ctx context.Context, checkoutID string) (*model.CheckoutSessionResponse, error)
	EditDetails(ctx context.Context, checkoutID string) (*model.CheckoutSessionResponse, error)
	BackToForm(ctx context.Context, checkoutID string) (*model.CheckoutSessionResponse, error)
	Close(ctx context.Context, checkoutID string) error
}

type checkoutAppImpl struct {
	config      *config.Config
	sessionRepo sessionrepo.SessionRepository
	cartRepo    cartrepo.CartRepository
	sink        appscript.Client
	notifier    Notifier
}

func NewCheckoutApp(config *config.Config, sessionRepo sessionrepo.SessionRepository, cartRepo cartrepo.CartRepository, sink appscript.Client, notifier Notifier) CheckoutApp {
	return &checkoutAppImpl{
		config:      config,
		sessionRepo: sessionRepo,
		cartRepo:    cartRepo,
		sink:        sink,
		notifier:    notifier,
	}
}

// First-failure validation messages, keyed by form field. Fields validate in
// struct order, so the surfaced message is always the earliest broken rule.
var fieldMessages = map[string]string{
	"FullName":     "Please enter your full name",
	"Phone":        "Please enter a valid phone number (e.g., 09XXXXXXXXX)",
	"Email":        "Please enter a valid email address",
	"Address":      "Please enter your shipping address",
	"Municipality": "Please select your municipality",
}

// Begin opens a checkout session for the caller's storefront session. The
// draft derives from the cart when it has contents; an empty cart falls back
// to the fixed single product.
func (s *checkoutAppImpl) Begin(ctx context.Context) (*model.CheckoutSessionResponse, error) {
	ownerID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	draft := model.OrderDraft{
		ProductID:     constant.DefaultProductID,
		ProductName:   constant.DefaultProductName,
		UnitPrice:     s.config.Checkout.UnitPrice,
		Quantity:      1,
		Province:      constant.DefaultProvince,
		PaymentMethod: constant.PaymentGCash,
	}

	items, err := s.cartRepo.Get(ctx, ownerID)
	if err != nil {
		logger.Error("[Begin] cart fetch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(items) > 0 {
		line := items[0]
		draft.ProductID = line.ProductID
		draft.ProductName = line.Name
		draft.UnitPrice = line.UnitPrice
		draft.Quantity = s.clamp(line.Quantity)
	}

	sess := &model.CheckoutSession{
		ID:               uuid.NewString(),
		OwnerSessionID:   ownerID,
		Phase:            constant.PhaseForm,
		Draft:            draft,
		CountdownSeconds: int(s.config.Checkout.PaymentWindow.Seconds()),
		CreatedAt:        time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		logger.Error("[Begin] session create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return toResponse(sess, false), nil
}

func (s *checkoutAppImpl) Get(ctx context.Context, checkoutID string) (*model.CheckoutSessionResponse, error) {
	sess, err := s.loadOwned(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	return toResponse(sess, false), nil
}

// SubmitForm validates the customer form. On the first failing rule the
// session stays in the form phase and the rule's message is surfaced. On
// success the order reference is assigned (once per draft) and the session
// advances to review.
func (s *checkoutAppImpl) SubmitForm(ctx context.Context, checkoutID string, req *model.CheckoutFormRequest) (*model.CheckoutSessionResponse, error) {
	sess, err := s.loadOwned(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != constant.PhaseForm {
		return nil, errors.SetCustomError(constant.ErrInvalidPhase)
	}

	if err := validatorx.ValidateStruct(req); err != nil {
		field := validatorx.FirstFieldError(err)
		msg, ok := fieldMessages[field]
		if !ok {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		return nil, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, msg)
	}
	if !constant.ValidMunicipality(req.Province, req.Municipality) {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, fieldMessages["Municipality"])
	}

	sess.Draft.FullName = req.FullName
	sess.Draft.Phone = req.Phone
	sess.Draft.Email = req.Email
	sess.Draft.Address = req.Address
	sess.Draft.Province = req.Province
	sess.Draft.Municipality = req.Municipality
	sess.Draft.Notes = req.Notes

	// The reference is generated once per draft; editing and resubmitting
	// keeps it.
	if sess.Draft.OrderNumber == "" {
		sess.Draft.OrderNumber = newOrderNumber()
	}

	sess.Phase = constant.PhaseReview
	sess.LastError = ""

	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		logger.Error("[SubmitForm] session update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return toResponse(sess, false), nil
}

// SelectProvince switches the draft province and resets the municipality to
// the first entry of the new province's list, discarding any prior choice.
func (s *checkoutAppImpl) SelectProvince(ctx context.Context, checkoutID, province string) (*model.CheckoutSessionResponse, error) {
	sess, err := s.loadOwned(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != constant.PhaseForm {
		return nil, errors.SetCustomError(constant.ErrInvalidPhase)
	}

	sess.Draft.Province = province
	sess.Draft.Municipality = constant.DefaultMunicipality(province)

	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		logger.Error("[SelectProvince] session update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return toResponse(sess, false), nil
}

// SetQuantity clamps to [1, max] rather than rejecting out-of-range values.
func (s *checkoutAppImpl) SetQuantity(ctx context.Context, checkoutID string, quantity int) (*model.CheckoutSessionResponse, error) {
	sess, err := s.loadOwned(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != constant.PhaseForm {
		return nil, errors.SetCustomError(constant.ErrInvalidPhase)
	}

	sess.Draft.Quantity = s.clamp(quantity)

	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		logger.Error("[SetQuantity] session update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return toResponse(sess, false), nil
}

func (s *checkoutAppImpl) SelectPaymentMethod(ctx context.Context, checkoutID string, method constant.PaymentMethod) (*model.CheckoutSessionResponse, error) {
	sess, err := s.loadOwned(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	if sess.Phase == constant.PhaseSuccess {
		return nil, errors.SetCustomError(constant.ErrInvalidPhase)
	}
	if method != constant.PaymentGCash && method != constant.PaymentCOD {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	sess.Draft.PaymentMethod = method

	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		logger.Error("[SelectPaymentMethod] session update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return toResponse(sess, false), nil
}

// ProceedToPayment enters the alternate GCash/COD selector flow from review.
func (s *checkoutAppImpl) ProceedToPayment(ctx context.Context, checkoutID string) (*model.CheckoutSessionResponse, error) {
	sess, err := s.loadOwned(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != constant.PhaseReview {
		return nil, errors.SetCustomError(constant.ErrInvalidPhase)
	}

	sess.Phase = constant.PhasePayment

	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		logger.Error("[ProceedToPayment] session update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return toResponse(sess, false), nil
}

// Confirm submits the draft once. A rejected or failed submission leaves the
// session in its current phase with the error recorded and the draft intact;
// an accepted one enters success, clears the cart and enqueues the
// best-effort confirmation email.
func (s *checkoutAppImpl) Confirm(ctx context.Context, checkoutID string) (*model.CheckoutSessionResponse, error) {
	sess, err := s.loadOwned(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != constant.PhaseReview && sess.Phase != constant.PhasePayment {
		return nil, errors.SetCustomError(constant.ErrInvalidPhase)
	}
	if sess.Submitting {
		return nil, errors.SetCustomError(constant.ErrInvalidPhase)
	}

	sess.Submitting = true
	sess.LastError = ""
	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		logger.Error("[Confirm] session update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	payload := buildPayload(&sess.Draft)
	_, submitErr := s.sink.Submit(ctx, payload)

	sess.Submitting = false
	if submitErr != nil {
		sess.LastError = submitErr.Error()
		if err := s.sessionRepo.Update(ctx, sess); err != nil {
			logger.Error("[Confirm] session update after failure", zap.String("error", err.Error()))
		}
		return nil, submitErr
	}

	celebrate := !sess.CelebrationFired
	sess.Phase = constant.PhaseSuccess
	sess.CelebrationFired = true

	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		logger.Error("[Confirm] session update after success", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// The order is placed; the cart that produced it is done.
	if err := s.cartRepo.Clear(ctx, sess.OwnerSessionID); err != nil {
		logger.Error("[Confirm] cart clear", zap.String("error", err.Error()))
	}

	if s.notifier != nil {
		s.notifier.OrderConfirmed(ctx, &model.OrderConfirmedMessage{
			OrderNumber:   sess.Draft.OrderNumber,
			FullName:      sess.Draft.FullName,
			Phone:         sess.Draft.Phone,
			Email:         sess.Draft.Email,
			Address:       sess.Draft.Address,
			City:          payload.City,
			ProductName:   sess.Draft.ProductName,
			Quantity:      sess.Draft.Quantity,
			TotalPrice:    sess.Draft.TotalPrice(),
			PaymentMethod: string(sess.Draft.PaymentMethod),
		})
	}

	logger.Info("[Confirm] order submitted",
		zap.String("order_number", sess.Draft.OrderNumber),
		zap.String("payment_method", string(sess.Draft.PaymentMethod)),
		zap.Int64("total_price", sess.Draft.TotalPrice()),
	)

	return toResponse(sess, celebrate), nil
}

// EditDetails returns from review to the form with the draft preserved.
func (s *checkoutAppImpl) EditDetails(ctx context.Context, checkoutID string) (*model.CheckoutSessionResponse, error) {
	return s.backTo(ctx, checkoutID, constant.PhaseReview)
}

// BackToForm leaves the payment selector back to the form.
func (s *checkoutAppImpl) BackToForm(ctx context.Context, checkoutID string) (*model.CheckoutSessionResponse, error) {
	return s.backTo(ctx, checkoutID, constant.PhasePayment)
}

func (s *checkoutAppImpl) backTo(ctx context.Context, checkoutID string, from constant.CheckoutPhase) (*model.CheckoutSessionResponse, error) {
	sess, err := s.loadOwned(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != from {
		return nil, errors.SetCustomError(constant.ErrInvalidPhase)
	}

	sess.Phase = constant.PhaseForm
	sess.LastError = ""

	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		logger.Error("[backTo] session update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return toResponse(sess, false), nil
}

// Close destroys the session from any phase. The next Begin starts a fresh
// draft with defaults.
func (s *checkoutAppImpl) Close(ctx context.Context, checkoutID string) error {
	sess, err := s.loadOwned(ctx, checkoutID)
	if err != nil {
		return err
	}

	if err := s.sessionRepo.Delete(ctx, sess.ID); err != nil {
		logger.Error("[Close] session delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *checkoutAppImpl) loadOwned(ctx context.Context, checkoutID string) (*model.CheckoutSession, error) {
	ownerID, ok := utilsContext.GetSessionID(ctx)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	sess, err := s.sessionRepo.Get(ctx, checkoutID)
	if err != nil {
		logger.Error("[loadOwned] session fetch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if sess == nil || sess.OwnerSessionID != ownerID {
		return nil, errors.SetCustomError(constant.ErrSessionNotFound)
	}
	return sess, nil
}

func (s *checkoutAppImpl) clamp(quantity int) int {
	if quantity < 1 {
		return 1
	}
	if max := s.config.Checkout.MaxQuantity; quantity > max {
		return max
	}
	return quantity
}

func buildPayload(draft *model.OrderDraft) *model.OrderPayload {
	codBalance := ""
	if draft.PaymentMethod == constant.PaymentCOD {
		codBalance = strconv.FormatInt(draft.Balance(), 10)
	}

	return &model.OrderPayload{
		OrderNumber:   draft.OrderNumber,
		FullName:      draft.FullName,
		Phone:         draft.Phone,
		Email:         draft.Email,
		Address:       draft.Address,
		City:          draft.Municipality + ", " + draft.Province,
		Quantity:      draft.Quantity,
		TotalPrice:    draft.TotalPrice(),
		PaymentMethod: string(draft.PaymentMethod),
		CODBalance:    codBalance,
		ImageURL:      draft.ImageURL,
		Notes:         draft.Notes,
	}
}

func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return constant.OrderNumberPrefix + suffix[:10]
}

func toResponse(sess *model.CheckoutSession, celebrate bool) *model.CheckoutSessionResponse {
	draft := &sess.Draft
	municipalities := constant.Municipalities(draft.Province)
	if municipalities == nil {
		municipalities = []string{}
	}

	return &model.CheckoutSessionResponse{
		CheckoutID:              sess.ID,
		Phase:                   sess.Phase,
		FullName:                draft.FullName,
		Phone:                   draft.Phone,
		Email:                   draft.Email,
		Address:                 draft.Address,
		Province:                draft.Province,
		Municipality:            draft.Municipality,
		Notes:                   draft.Notes,
		ProductName:             draft.ProductName,
		UnitPrice:               draft.UnitPrice,
		Quantity:                draft.Quantity,
		TotalPrice:              draft.TotalPrice(),
		PaymentMethod:           draft.PaymentMethod,
		DownPayment:             draft.DownPayment(),
		Balance:                 draft.Balance(),
		OrderNumber:             draft.OrderNumber,
		CountdownSeconds:        sess.CountdownSeconds,
		AvailableProvinces:      constant.Provinces(),
		AvailableMunicipalities: municipalities,
		Celebrate:               celebrate,
	}
}
