package bootstrap

import (
	"context"
	"time"

	"travel-backoffice-be/internal/config"
	"travel-backoffice-be/internal/controller"
	"travel-backoffice-be/internal/pkg/logger"
	"travel-backoffice-be/internal/pkg/mailer"
	"travel-backoffice-be/internal/pkg/metrics"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/internal/repository/memory"
	"travel-backoffice-be/internal/repository/redisstore"
	"travel-backoffice-be/internal/repository/unitofwork"
	"travel-backoffice-be/internal/service"
	"travel-backoffice-be/pkg/events"
	pktNats "travel-backoffice-be/pkg/nats"
	"travel-backoffice-be/pkg/printing"
	"travel-backoffice-be/pkg/storage"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const module = "Bootstrap"

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	BookingController   controller.IBookingController
	VisaController      controller.IVisaController
	PaymentController   controller.IPaymentController
	EnquiryController   controller.IEnquiryController
	LeadController      controller.ILeadController
	CatalogController   controller.ICatalogController
	DashboardController controller.IDashboardController

	// Background work, started by main.go
	ActivityService *service.ActivityService
	ConsumerService service.IConsumerService
	AuthService     service.IAuthService

	Metrics *metrics.Metrics
	Logger  logger.ILogger
	Storage storage.Storage

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	ctx := context.Background()

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	uowFactory := unitofwork.NewRepositoryFactory(db)
	m := metrics.New()
	c := &Container{Metrics: m, Logger: sysLogger}

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		sysLogger,
	)

	files, err := newStorage(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	c.Storage = files

	// Outbound domain events. The API keeps serving without NATS.
	var publisher events.Publisher = events.NopPublisher{}
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		sysLogger.Warn(module, "NATS unavailable, domain events disabled", map[string]interface{}{"error": err.Error()})
	} else {
		publisher = natsPub
		c.closers = append(c.closers, natsPub.Close)

		sub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn(module, "NATS subscriber unavailable, activity feed disabled", map[string]interface{}{"error": err.Error()})
		} else {
			c.ActivityService = service.NewActivityService(sub, m, sysLogger)
			c.closers = append(c.closers, sub.Close)
		}
	}

	// Access-token blacklist
	var blacklist interface {
		serverutils.TokenBlacklist
		service.TokenRevoker
	}
	rdb, err := redisstore.Connect(ctx, cfg.App.RedisURL)
	if err != nil {
		sysLogger.Warn(module, "Redis unavailable, using in-process token blacklist", map[string]interface{}{"error": err.Error()})
		blacklist = memory.NewTokenBlacklist()
	} else {
		blacklist = redisstore.NewTokenBlacklist(rdb)
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	engine, err := printing.NewEngine()
	if err != nil {
		return nil, err
	}
	renderer := printing.NewChromedpRenderer(printing.ChromedpConfig{
		RemoteURL: cfg.Printing.ChromeRemoteURL,
		Timeout:   cfg.Printing.Timeout,
		NoSandbox: cfg.Printing.NoSandbox,
		Logger:    sysLogger.Zap(),
	})
	c.closers = append(c.closers, func() { _ = renderer.Close() })

	// Contact intake bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	publisherService := service.NewPublisherService(pubSub, service.TopicContactSubmitted)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		service.TopicContactSubmitted,
		uowFactory,
		emailService,
		sysLogger,
	)

	documentService := service.NewDocumentService(engine, renderer, m, sysLogger)
	authService := service.NewAuthService(uowFactory, emailService, blacklist, publisher, files, cfg.Auth, sysLogger)
	c.AuthService = authService
	userService := service.NewUserService(uowFactory, emailService, documentService, files, sysLogger)
	bookingService := service.NewBookingService(uowFactory, documentService, files, publisher, m, sysLogger)
	quickBookingService := service.NewQuickBookingService(uowFactory, documentService, files, publisher, m, sysLogger)
	visaService := service.NewVisaService(uowFactory, files, publisher, m, sysLogger)
	paymentService := service.NewPaymentService(uowFactory, publisher, m, sysLogger)
	enquiryService := service.NewEnquiryService(uowFactory, publisherService, publisher, m, sysLogger)
	leadService := service.NewLeadService(uowFactory, m, sysLogger)
	packageService := service.NewPackageService(uowFactory, files, m, sysLogger)
	posterService := service.NewPosterService(uowFactory, documentService, files, sysLogger)
	dashboardService := service.NewDashboardService(uowFactory)
	platformService := service.NewPlatformService(uowFactory, cfg.Platform.SecretKey, sysLogger)

	jwtAuth := serverutils.NewJwtMiddleware(serverutils.JwtConfig{
		Secret:    cfg.Auth.JwtSecret,
		Blacklist: blacklist,
	})
	apiKeyAuth := serverutils.APIKeyMiddleware(
		enquiryService,
		serverutils.NewKeyRateLimiter(cfg.RateLimit.APIKeyRPS, cfg.RateLimit.APIKeyBurst),
	)

	c.AuthController = controller.NewAuthController(authService, jwtAuth)
	c.UserController = controller.NewUserController(userService, jwtAuth)
	c.BookingController = controller.NewBookingController(bookingService, quickBookingService, jwtAuth)
	c.VisaController = controller.NewVisaController(visaService, jwtAuth)
	c.PaymentController = controller.NewPaymentController(paymentService, jwtAuth)
	c.EnquiryController = controller.NewEnquiryController(enquiryService, packageService, jwtAuth, apiKeyAuth)
	c.LeadController = controller.NewLeadController(leadService, jwtAuth)
	c.CatalogController = controller.NewCatalogController(packageService, posterService, jwtAuth)
	c.DashboardController = controller.NewDashboardController(dashboardService, platformService, jwtAuth)

	return c, nil
}

func newStorage(ctx context.Context, cfg config.StorageConfig) (storage.Storage, error) {
	if cfg.Driver == "s3" {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return storage.NewS3Storage(ctx, storage.S3Config{
			Bucket:        cfg.Bucket,
			Region:        cfg.Region,
			Endpoint:      cfg.Endpoint,
			AccessKey:     cfg.AccessKey,
			SecretKey:     cfg.SecretKey,
			PathStyle:     cfg.PathStyle,
			PublicBaseURL: cfg.PublicBaseURL,
		})
	}
	return storage.NewLocalStorage(cfg.LocalRoot, cfg.PublicBaseURL)
}

// Close releases infrastructure in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
