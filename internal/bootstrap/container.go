package bootstrap

import (
	"context"
	"log"

	"roombuddy-be/internal/config"
	"roombuddy-be/internal/controller"
	"roombuddy-be/internal/handler"
	"roombuddy-be/internal/pkg/logger"
	"roombuddy-be/internal/pkg/mailer"
	"roombuddy-be/internal/repository/implementation"
	"roombuddy-be/internal/repository/memory"
	"roombuddy-be/internal/repository/unitofwork"
	"roombuddy-be/internal/service"
	"roombuddy-be/internal/websocket"
	pktNats "roombuddy-be/pkg/nats"
	"roombuddy-be/pkg/payment"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	OAuthController      controller.IOAuthController
	UserController       controller.IUserController
	PostController       controller.IPostController
	ConnectionController controller.IConnectionController
	PaymentController    controller.IPaymentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Infrastructure
	// NATS (notification events)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis (websocket fan-out across instances)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// In-process event bus for email alerts
	publisherService := service.NewPublisherService()
	consumerService := service.NewConsumerService(
		publisherService.Subscriber(),
		service.TopicConnectionAlerts,
		emailService,
	)

	// Payment gateway
	gateway := payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	// Identity resolution cache (OAuth fast path)
	identityCache := memory.NewIdentityCache()

	// 3. Services
	identityService := service.NewIdentityService(uowFactory, identityCache)
	authService := service.NewAuthService(uowFactory, emailService)
	oauthService := service.NewOAuthService(identityService, cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)
	userService := service.NewUserService(uowFactory)
	postService := service.NewPostService(uowFactory)
	connectionService := service.NewConnectionService(uowFactory, natsPub, publisherService)
	paymentService := service.NewPaymentService(uowFactory, gateway, cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, natsPub)

	// 3.5 Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	sysLogger.Info("Bootstrap", "Container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		AuthController:       controller.NewAuthController(authService),
		OAuthController:      controller.NewOAuthController(oauthService),
		UserController:       controller.NewUserController(userService),
		PostController:       controller.NewPostController(postService),
		ConnectionController: controller.NewConnectionController(connectionService),
		PaymentController:    controller.NewPaymentController(paymentService),

		ConsumerService: consumerService,
	}
}
