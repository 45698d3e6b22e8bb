package main

import (
	"context"
	"net/http"

	cartapp "github.com/cwagoventures/cosmibeautii-backend/application/cart"
	checkoutapp "github.com/cwagoventures/cosmibeautii-backend/application/checkout"
	contactapp "github.com/cwagoventures/cosmibeautii-backend/application/contact"
	newsletterapp "github.com/cwagoventures/cosmibeautii-backend/application/newsletter"
	"github.com/cwagoventures/cosmibeautii-backend/application/notify"
	uploadapp "github.com/cwagoventures/cosmibeautii-backend/application/upload"
	"github.com/cwagoventures/cosmibeautii-backend/cmd/config"
	_ "github.com/cwagoventures/cosmibeautii-backend/docs"
	cartRepo "github.com/cwagoventures/cosmibeautii-backend/repository/cart"
	sessionRepo "github.com/cwagoventures/cosmibeautii-backend/repository/session"
	"github.com/cwagoventures/cosmibeautii-backend/thirdparty/appscript"
	"github.com/cwagoventures/cosmibeautii-backend/thirdparty/rabbitmq"
	"github.com/cwagoventures/cosmibeautii-backend/thirdparty/resend"
	"github.com/cwagoventures/cosmibeautii-backend/transport"
	"github.com/cwagoventures/cosmibeautii-backend/utils/logger"
	validatorx "github.com/cwagoventures/cosmibeautii-backend/utils/validator"
	"go.uber.org/zap"
)

// @title COSMIBEAUTII API
// @version 1.0
// @description Cosmibeautii storefront API Documentation
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Register custom validation rules up front
	validatorx.Init()

	// Outbound collaborators
	orderSink := appscript.NewClient(cfg.OrderSink)
	emailClient := resend.NewClient(cfg.Email)

	// Best-effort confirmation email: queue-backed when a broker is
	// configured, detached goroutine otherwise.
	var notifier notify.Notifier
	if cfg.RabbitMQ.Enabled {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()

		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, emailClient, cfg.Email.OwnerEmail)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer func() {
			_ = consumer.Close()
		}()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start rabbitmq consumer", zap.Error(err))
		}

		notifier = notify.NewQueueNotifier(publisher)
	} else {
		notifier = notify.NewDirectNotifier(emailClient, cfg.Email.OwnerEmail)
	}

	// Initialize repositories
	CartRepo := cartRepo.NewCartRepository()
	SessionRepo := sessionRepo.NewSessionRepository()

	// Initialize application layers
	CartApp := cartapp.NewCartApp(CartRepo)
	CheckoutApp := checkoutapp.NewCheckoutApp(cfg, SessionRepo, CartRepo, orderSink, notifier)
	ContactApp := contactapp.NewContactApp()
	NewsletterApp := newsletterapp.NewNewsletterApp(cfg, emailClient)
	UploadApp := uploadapp.NewUploadApp()

	httpTransport := transport.NewTransport(CartApp, CheckoutApp, ContactApp, NewsletterApp, UploadApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err := server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
