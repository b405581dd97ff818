package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asantefin/asante/internal/application/usecase"
	"github.com/asantefin/asante/internal/domain/port"
	"github.com/asantefin/asante/internal/domain/service"
	"github.com/asantefin/asante/internal/infrastructure/adapter"
	"github.com/asantefin/asante/internal/infrastructure/config"
	"github.com/asantefin/asante/internal/infrastructure/messaging"
	pgRepo "github.com/asantefin/asante/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/asantefin/asante/internal/presentation/grpc"
	"github.com/asantefin/asante/internal/presentation/rest"
	"github.com/asantefin/asante/pkg/auth"
	pkgkafka "github.com/asantefin/asante/pkg/kafka"
	"github.com/asantefin/asante/pkg/observability"
	pkgpostgres "github.com/asantefin/asante/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: "json",
	})
	slog.SetDefault(logger)

	logger.Info("starting asante-backoffice",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing.
	shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Initialize metrics.
	_, metricsHandler, err := observability.InitMetrics(ctx, observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	dbCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
		AppName:  cfg.ServiceName,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(dbCfg.DSN(), "file://./migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	clientRepo := pgRepo.NewClientRepo(pool)
	appRepo := pgRepo.NewLoanApplicationRepo(pool)
	loanRepo := pgRepo.NewLoanRepo(pool)
	savingsRepo := pgRepo.NewSavingsAccountRepo(pool)
	productRepo := pgRepo.NewProductConfigRepo(pool)
	outboxRepo := pgRepo.NewOutboxRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, outboxRepo, cfg.Kafka.Topic, logger)

	// Re-deliver events parked in the outbox while the broker was down.
	outboxRelay := messaging.NewOutboxRelay(outboxRepo, kafkaProducer, cfg.Kafka.Topic, 30*time.Second, logger)
	go outboxRelay.Start(ctx)

	var creditBureau port.CreditBureauClient = adapter.NewStubCreditBureauClient()
	if cfg.CreditBureau.BaseURL != "" {
		creditBureau = adapter.NewCreditBureauAdapter(adapter.CreditBureauConfig{
			PrimaryBureau: adapter.Bureau(cfg.CreditBureau.Bureau),
			BaseURL:       cfg.CreditBureau.BaseURL,
			APIKey:        cfg.CreditBureau.APIKey,
		})
		logger.Info("using live credit bureau", "bureau", cfg.CreditBureau.Bureau)
	}
	feeSchedule := adapter.NewProductFeeSchedule(productRepo)
	underwriting := service.NewUnderwritingEngine()
	metrics := service.NewPortfolioMetrics()

	// Wire use cases.
	recordRepaymentUC := usecase.NewRecordRepaymentUseCase(loanRepo, savingsRepo, publisher)
	usecases := grpcPresentation.Usecases{
		RegisterClient:  usecase.NewRegisterClientUseCase(clientRepo, publisher),
		ActivateClient:  usecase.NewActivateClientUseCase(clientRepo, publisher),
		SubmitApp:       usecase.NewSubmitLoanApplicationUseCase(clientRepo, appRepo, productRepo, publisher),
		ReviewApp:       usecase.NewReviewLoanApplicationUseCase(appRepo, clientRepo, creditBureau, underwriting, publisher),
		DisburseLoan:    usecase.NewDisburseLoanUseCase(appRepo, loanRepo, productRepo, publisher),
		PreviewSchedule: usecase.NewPreviewScheduleUseCase(),
		GetLoan:         usecase.NewGetLoanUseCase(loanRepo, metrics),
		RecordRepayment: recordRepaymentUC,
		SettleEarly:     usecase.NewSettleEarlyUseCase(loanRepo, feeSchedule, publisher),
		WriteOffLoan:    usecase.NewWriteOffLoanUseCase(loanRepo, publisher),
		OpenSavings:     usecase.NewOpenSavingsAccountUseCase(clientRepo, savingsRepo, publisher),
		DepositSavings:  usecase.NewDepositSavingsUseCase(savingsRepo, publisher),
		WithdrawSavings: usecase.NewWithdrawSavingsUseCase(savingsRepo, publisher),
		AccrueInterest:  usecase.NewAccrueSavingsInterestUseCase(savingsRepo, publisher),
	}

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer: "asante-gateway",
	}
	switch {
	case os.Getenv("JWT_PUBLIC_KEY") != "":
		jwtCfg.PublicKeyPEM = os.Getenv("JWT_PUBLIC_KEY")
	case os.Getenv("JWT_PUBLIC_KEY_FILE") != "":
		keyData, loadErr := auth.LoadKeyFromFile(os.Getenv("JWT_PUBLIC_KEY_FILE"))
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtCfg.Secret = cfg.JWTSecret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewBackofficeHandler(usecases)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Mobile-money payment consumer.
	paymentConsumer, err := messaging.NewPaymentConsumer(pkgkafka.Config{
		Brokers:       cfg.Kafka.Brokers,
		ConsumerGroup: cfg.Kafka.ConsumerGroup,
	}, cfg.Kafka.PaymentsTopic, recordRepaymentUC, logger)
	if err != nil {
		logger.Error("failed to build payment consumer", "error", err)
		os.Exit(1)
	}
	defer paymentConsumer.Close()

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := paymentConsumer.Start(ctx); err != nil {
			logger.Error("payment consumer stopped", "error", err)
		}
	}()

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("asante-backoffice stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
