package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpctx "github.com/mpetrov/storefront-server/internal/api/http/context"
	"github.com/mpetrov/storefront-server/internal/api/http/handler"
	"github.com/mpetrov/storefront-server/internal/api/http/middleware"
	"github.com/mpetrov/storefront-server/internal/api/http/router"
	"github.com/mpetrov/storefront-server/internal/config"
	"github.com/mpetrov/storefront-server/internal/logger"
	"github.com/mpetrov/storefront-server/internal/mailer"
	"github.com/mpetrov/storefront-server/internal/repository/mongodb"
	"github.com/mpetrov/storefront-server/internal/security"
	"github.com/mpetrov/storefront-server/internal/server"
	"github.com/mpetrov/storefront-server/internal/service"
	"github.com/mpetrov/storefront-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	conn, err := mongodb.NewConnection(ctx, cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer conn.Close(context.Background())

	userRepo := mongodb.NewUserRepository(conn)
	cartRepo := mongodb.NewCartRepository(conn)
	categoryRepo := mongodb.NewCategoryRepository(conn)
	subCategoryRepo := mongodb.NewSubCategoryRepository(conn)
	productRepo := mongodb.NewProductRepository(conn)
	variantRepo := mongodb.NewVariantRepository(conn)

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := security.NewBcryptHasher(security.DefaultCost)
	mail := mailer.NewSendGrid(cfg.Email.APIKey, cfg.Email.From, logger)
	ctxMgr := httpctx.NewManager()

	authService := service.NewAuth(userRepo, tokenManager, hasher, mail, cfg.FrontendURL, logger)
	cartService := service.NewCart(cartRepo, productRepo, variantRepo, logger)
	catalogService := service.NewCatalog(categoryRepo, subCategoryRepo, productRepo, variantRepo, logger)

	handlers := router.Handlers{
		Auth:        handler.NewAuth(authService, ctxMgr, logger),
		Cart:        handler.NewCart(cartService, ctxMgr, logger),
		Category:    handler.NewCategory(catalogService, logger),
		SubCategory: handler.NewSubCategory(catalogService, logger),
		Product:     handler.NewProduct(catalogService, logger),
		Variant:     handler.NewVariant(catalogService, logger),
	}

	authenticate := middleware.NewAuthenticate(tokenManager, userRepo, ctxMgr, logger)
	logging := middleware.NewLogging(logger)

	var ln server.Listener
	if cfg.HTTP.EnableHTTPS {
		ln = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		ln = server.NewPlainListener()
	}

	srv := server.NewHTTP(
		fmt.Sprintf(":%s", cfg.HTTP.Port),
		router.New(handlers, authenticate, logging),
		ln,
		logger,
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", srv.Address())
		if err := srv.Start(); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
