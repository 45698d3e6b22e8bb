package newsletter_test

import (
	"context"
	"errors"
	"testing"

	appnewsletter "github.com/cwagoventures/cosmibeautii-backend/application/newsletter"
	"github.com/cwagoventures/cosmibeautii-backend/cmd/config"
	emailmocks "github.com/cwagoventures/cosmibeautii-backend/mocks/thirdparty/resend"
	"github.com/cwagoventures/cosmibeautii-backend/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Email: config.EmailConfig{OwnerEmail: "owner@example.com"},
	}
}

func TestNewsletterApp_Subscribe(t *testing.T) {
	emails := emailmocks.NewEmailClient(t)
	emails.On("Send", mock.Anything, "owner@example.com", mock.Anything, mock.MatchedBy(func(html string) bool {
		return len(html) > 0
	})).Return(nil).Once()

	app := appnewsletter.NewNewsletterApp(testConfig(), emails)

	res, err := app.Subscribe(context.Background(), &model.SubscribeRequest{Email: "maria@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Successfully subscribed!", res.Message)
}

func TestNewsletterApp_Subscribe_InvalidEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantMsg string
	}{
		{name: "empty", email: "", wantMsg: "Email is required"},
		{name: "no dot in domain", email: "a@b", wantMsg: "Please enter a valid email address"},
		{name: "no at sign", email: "not-an-email", wantMsg: "Please enter a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appnewsletter.NewNewsletterApp(testConfig(), emailmocks.NewEmailClient(t))

			_, err := app.Subscribe(context.Background(), &model.SubscribeRequest{Email: tt.email})
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestNewsletterApp_Subscribe_SendFailureStillSubscribes(t *testing.T) {
	emails := emailmocks.NewEmailClient(t)
	emails.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("api down")).Once()

	app := appnewsletter.NewNewsletterApp(testConfig(), emails)

	res, err := app.Subscribe(context.Background(), &model.SubscribeRequest{Email: "maria@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Successfully subscribed!", res.Message)
}
