package main

import (
	"github.com/asaskevich/EventBus"
	_ "github.com/joho/godotenv/autoload"
	"github.com/kmureithi/devfolio/internal/clients/directory"
	"github.com/kmureithi/devfolio/internal/config"
	"github.com/kmureithi/devfolio/internal/logger"
	"github.com/kmureithi/devfolio/internal/metrics"
	"github.com/kmureithi/devfolio/internal/repositories"
	"github.com/kmureithi/devfolio/internal/services"
	"github.com/kmureithi/devfolio/internal/web"
	log "github.com/sirupsen/logrus"
)

const visitRetentionInDays = 365

func main() {

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	bus := EventBus.New()

	posts := repositories.NewPostsRepository(dbContext.DB)
	accounts := repositories.NewAccountsRepository(dbContext.DB)
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	visits := repositories.NewVisitsRepository(dbContext.DB)

	cachedPosts, err := repositories.NewCachedPosts(posts, bus)
	if err != nil {
		log.Fatalf("can't create cached posts: %v", err)
	}

	directoryClient := directory.NewClient(cfg.Directory.URL, cfg.Directory.APIKey)
	if cfg.Directory.MaxRequestsPerSecond > 0 {
		directoryClient.SetRateLimit(cfg.Directory.MaxRequestsPerSecond)
	}

	sessions := services.NewSessionStore(directoryClient, accounts, bus)
	defer sessions.Teardown()

	board := services.NewBoard(cachedPosts, posts, applications, bus)
	registration := services.NewRegistration(directoryClient, accounts)

	cleaner, err := services.NewVisitsCleaner(visits, visitRetentionInDays)
	if err != nil {
		log.Fatalf("can't create visits cleaner: %v", err)
	}
	defer cleaner.Stop()

	server := web.NewServer(cfg.Server, sessions, board, registration, directoryClient,
		accounts, visits, cfg.Directory.OAuthRedirectURL)

	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
