package newsletter

import (
	"context"

	"github.com/cwagoventures/cosmibeautii-backend/cmd/config"
	"github.com/cwagoventures/cosmibeautii-backend/constant"
	"github.com/cwagoventures/cosmibeautii-backend/model"
	"github.com/cwagoventures/cosmibeautii-backend/thirdparty/resend"
	"github.com/cwagoventures/cosmibeautii-backend/utils/errors"
	"github.com/cwagoventures/cosmibeautii-backend/utils/logger"
	validatorx "github.com/cwagoventures/cosmibeautii-backend/utils/validator"
	"go.uber.org/zap"
)

type NewsletterApp interface {
	Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.SubscribeResponse, error)
}

type newsletterAppImpl struct {
	config *config.Config
	emails resend.EmailClient
}

func NewNewsletterApp(config *config.Config, emails resend.EmailClient) NewsletterApp {
	return &newsletterAppImpl{config: config, emails: emails}
}

// Subscribe signs the address up and sends the welcome email. The send is
// best effort like the order confirmation: a failed welcome email is logged
// and the subscription still succeeds.
func (s *newsletterAppImpl) Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.SubscribeResponse, error) {
	if req.Email == "" {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "Email is required")
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrInvalidRequest, "Please enter a valid email address")
	}

	logger.Info("[Subscribe] newsletter subscription", zap.String("email", req.Email))

	subject, html := resend.WelcomeEmail(req.Email)
	if err := s.emails.Send(ctx, s.config.Email.OwnerEmail, subject, html); err != nil {
		logger.Error("[Subscribe] send welcome email", zap.String("error", err.Error()))
	}

	return &model.SubscribeResponse{Message: "Successfully subscribed!"}, nil
}
