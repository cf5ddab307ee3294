package bootstrap

import (
	"idea-garden-be/internal/config"
	"idea-garden-be/internal/controller"
	"idea-garden-be/internal/pkg/githubclient"
	"idea-garden-be/internal/pkg/logger"
	"idea-garden-be/internal/repository/implementation"
	"idea-garden-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	IdeaController controller.IIdeaController
	AuthController controller.IAuthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared infrastructure
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	activityLogger := logger.NewIsolatedLogger("activity." + cfg.App.LogFilePath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// 3. Upstream client + repository
	ghClient := githubclient.New(cfg.GitHub.APIBaseURL)
	ideaRepository := implementation.NewIdeaRepository(ghClient)

	// 4. Services
	grantService := service.NewGrantService(cfg.Grant)
	authService := service.NewAuthService(cfg, ghClient, grantService)
	publisherService := service.NewPublisherService(pubSub, cfg.App.ActivityTopic)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ActivityTopic, activityLogger)
	ideaService := service.NewIdeaService(ideaRepository, publisherService, cfg.GitHub.IdeasRepo)

	// 5. Controllers
	ideaController := controller.NewIdeaController(ideaService, authService)
	authController := controller.NewAuthController(authService, grantService)

	return &Container{
		IdeaController:  ideaController,
		AuthController:  authController,
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
