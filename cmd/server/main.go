package main

import (
	"context"
	"fmt"
	"os"

	"tablero/internal/catalog"
	"tablero/internal/config"
	"tablero/internal/handler"
	"tablero/internal/logging"
	"tablero/internal/notify/noop"
	"tablero/internal/notify/ses"
	"tablero/internal/port"
	"tablero/internal/repository/postgres"
	"tablero/internal/router"
	"tablero/internal/service"
	s3storage "tablero/internal/storage/s3"
	"tablero/internal/stream"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(cfg.Log)

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	catalogStore, err := catalog.Open(cfg.Catalog.Dir)
	if err != nil {
		return fmt.Errorf("failed to open catalog store: %w", err)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	remitoRepo := postgres.NewRemitoRepo(db)
	ticketRepo := postgres.NewTicketRepo(db)
	movementRepo := postgres.NewMovementRepo(db)

	// Initialize storage
	signatures, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	var notifier port.Notifier
	if cfg.Email.Provider == "ses" {
		notifier, err = ses.NewSESNotifier(cfg.Email)
		if err != nil {
			return fmt.Errorf("failed to initialize SES notifier: %w", err)
		}
	} else {
		notifier = noop.NewNoopNotifier()
	}

	hub := stream.NewHub()

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	remitoSvc := service.NewRemitoService(remitoRepo, signatures, notifier, hub)
	ticketSvc := service.NewTicketService(ticketRepo, hub)
	movementSvc := service.NewMovementService(movementRepo, hub)
	reportSvc := service.NewReportService(remitoRepo, ticketRepo, catalogStore)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	remitoH := handler.NewRemitoHandler(remitoSvc)
	ticketH := handler.NewTicketHandler(ticketSvc)
	movementH := handler.NewMovementHandler(movementSvc)
	reportH := handler.NewReportHandler(reportSvc)
	categoryH := handler.NewCategoryHandler(catalogStore)
	streamH := handler.NewStreamHandler(hub, map[string]handler.SnapshotFunc{
		service.CollectionRemitos: func(ctx context.Context) (interface{}, error) {
			return remitoSvc.ListActive(ctx)
		},
		service.CollectionHistory: func(ctx context.Context) (interface{}, error) {
			return remitoSvc.History(ctx)
		},
		service.CollectionTickets: func(ctx context.Context) (interface{}, error) {
			return ticketSvc.List(ctx)
		},
		service.CollectionMovements: func(ctx context.Context) (interface{}, error) {
			return movementSvc.List(ctx)
		},
	})
	healthH := handler.NewHealthHandler(
		handler.HealthCheck{Name: "database", Check: db.PingContext},
		handler.HealthCheck{Name: "catalog", Check: func(context.Context) error {
			_, err := catalogStore.Load()
			return err
		}},
	)

	// Setup router
	r := router.Setup(authSvc, logger, cfg.CORS.AllowedOrigins,
		authH, remitoH, ticketH, movementH, reportH, categoryH, streamH, healthH)

	logger.Info().Str("addr", cfg.Server.Port).Msg("server starting")
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
