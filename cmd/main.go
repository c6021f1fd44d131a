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

	"golang.org/x/time/rate"
	"google.golang.org/grpc/health"

	httpcontext "github.com/dtroode/storefront-server/internal/api/http/context"
	httprouter "github.com/dtroode/storefront-server/internal/api/http/router"
	httpserver "github.com/dtroode/storefront-server/internal/api/http/server"
	grpchealth "github.com/dtroode/storefront-server/internal/api/grpc/health"
	grpcrouter "github.com/dtroode/storefront-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/storefront-server/internal/api/grpc/server"
	"github.com/dtroode/storefront-server/internal/config"
	"github.com/dtroode/storefront-server/internal/logger"
	"github.com/dtroode/storefront-server/internal/model"
	"github.com/dtroode/storefront-server/internal/password"
	"github.com/dtroode/storefront-server/internal/repository/postgres"
	"github.com/dtroode/storefront-server/internal/server"
	"github.com/dtroode/storefront-server/internal/service"
	"github.com/dtroode/storefront-server/internal/storage/minio"
	"github.com/dtroode/storefront-server/internal/token"
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

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	avatars, err := minio.New(ctx, minio.Config{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		UseSSL:    cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to initialize avatar storage", "error", err)
	}

	hasher := password.NewArgon2(password.Params{
		Time:   cfg.KDF.Time,
		MemKiB: cfg.KDF.MemKiB,
		Par:    cfg.KDF.Par,
		KeyLen: cfg.KDF.KeyLen,
	})
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	customerService := service.NewCustomer(
		postgres.NewCustomerRepository(db),
		postgres.NewSessionRepository(db),
		db,
		hasher,
		tokenManager,
		avatars,
		logger,
		cfg.Session.TTL,
	)
	addressService := service.NewAddress(
		postgres.NewAddressRepository(db),
		postgres.NewStateRepository(db),
		customerService,
		db,
		logger,
	)
	catalogService := service.NewCatalog(
		postgres.NewBrandRepository(db),
		postgres.NewCategoryRepository(db),
		postgres.NewItemRepository(db),
		logger,
	)

	httpHandler := httprouter.New(customerService, addressService, catalogService, httpcontext.NewManager(), httprouter.Options{
		AllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
		MaxAvatarBytes: cfg.HTTP.MaxAvatarBytes,
		LoginRate:      rate.Limit(cfg.Login.Rate),
		LoginBurst:     cfg.Login.Burst,
		TrustedProxies: cfg.HTTP.TrustedProxies,
	}, logger).Register()
	httpSrv := httpserver.NewHTTPServer(httpHandler, fmt.Sprintf(":%s", cfg.HTTP.Port))

	healthServer := health.NewServer()
	grpcLogger := logger.With("component", "grpc")
	probe := grpchealth.NewProbe(healthServer, db, cfg.GRPC.ProbeInterval, grpcLogger)
	grpcSrv := grpcserver.NewGRPCServer(grpcrouter.New(healthServer, grpcLogger).Register(), fmt.Sprintf(":%s", cfg.GRPC.Port), probe.Shutdown)

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	probeCtx, cancelProbe := context.WithCancel(ctx)
	defer cancelProbe()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		probe.Run(probeCtx)
	}()

	servers := []model.Server{httpSrv, grpcSrv}
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	cancelProbe()
	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
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
