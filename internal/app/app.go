package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/vladislavdragonenkov/cart/internal/cart"
	healthcheck "github.com/vladislavdragonenkov/cart/internal/health"
	"github.com/vladislavdragonenkov/cart/internal/metrics"
	grpcsvc "github.com/vladislavdragonenkov/cart/internal/service/grpc"
	"github.com/vladislavdragonenkov/cart/internal/service/httpapi"
	"github.com/vladislavdragonenkov/cart/internal/service/janitor"
	"github.com/vladislavdragonenkov/cart/internal/version"
	cartv1 "github.com/vladislavdragonenkov/cart/proto/cart/v1"
)

// Run поднимает gRPC, HTTP API и сервер метрик и блокируется до отмены ctx или падения gRPC.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	deps, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.close(logger)

	kafkaProducer, _ := initKafkaProducer(cfg.KafkaBrokers, logger)
	defer closeKafkaProducer(kafkaProducer, logger)

	opts := cart.Options{
		Logger:     logger.WithField("layer", "cart"),
		Recorder:   metrics.NewCartMetrics(),
		MaxRetries: cfg.MaxRetries,
	}
	// Без этой проверки в интерфейс попал бы typed nil.
	if kafkaProducer != nil {
		opts.Publisher = kafkaProducer
	}

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	healthHandler.RegisterChecker("storage", deps.storageChecker)
	healthHandler.RegisterChecker("kafka", healthcheck.NewOptionalChecker("kafka", func(context.Context) error {
		if kafkaProducer == nil {
			return errKafkaDisabled
		}
		return nil
	}))

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	var janitorWG sync.WaitGroup
	if deps.purger != nil {
		j := janitor.New(deps.purger,
			janitor.WithLogger(logger.WithField("layer", "janitor")),
			janitor.WithInterval(cfg.JanitorInterval),
			janitor.WithBatchSize(cfg.JanitorBatchSize),
		)
		janitorWG.Add(1)
		go func() {
			defer janitorWG.Done()
			j.Run(janitorCtx)
		}()
	}
	defer func() {
		stopJanitor()
		janitorWG.Wait()
	}()

	cartService := grpcsvc.NewCartService(deps.store, cfg.SessionCookie, opts, logger.WithField("layer", "grpc"))
	grpcMetrics := promgrpc.NewServerMetrics()
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcMetrics.UnaryServerInterceptor()))
	if err := prometheus.Register(grpcMetrics); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok2 := are.ExistingCollector.(*promgrpc.ServerMetrics); ok2 {
				grpcMetrics = existing
			}
		} else {
			logger.WithError(err).Warn("failed to register grpc metrics")
		}
	}

	cartv1.RegisterCartServiceServer(grpcServer, cartService)
	grpcMetrics.InitializeMetrics(grpcServer)
	reflection.Register(grpcServer)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)
	apiHandler := httpapi.NewHandler(deps.store, cfg.SessionCookie, opts, logger.WithField("layer", "http"))
	apiSrv := startHTTPServer(ctx, cfg.HTTPAddr, logger, httpapi.NewRouter(apiHandler))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		shutdownHTTP(apiSrv, logger)
		shutdownHTTP(metricsSrv, logger)
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("gRPC сервер слушает %s", cfg.GRPCAddr)
		errCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем серверы")
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		stopGRPC(grpcServer, shutdownTimeout(cfg), logger)
		shutdownHTTP(apiSrv, logger)
		shutdownHTTP(metricsSrv, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(apiSrv, logger)
		shutdownHTTP(metricsSrv, logger)
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}

var errKafkaDisabled = errors.New("kafka producer is not configured")

func shutdownTimeout(cfg Config) time.Duration {
	if cfg.ShutdownTimeout > 0 {
		return cfg.ShutdownTimeout
	}
	return 5 * time.Second
}

func stopGRPC(server *grpc.Server, timeout time.Duration, logger *log.Entry) {
	stoppedCh := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stoppedCh)
	}()
	select {
	case <-stoppedCh:
	case <-time.After(timeout):
		logger.Warn("graceful stop превысил таймаут, принудительно останавливаем")
		server.Stop()
	}
}

// startMetricsServer запускает /metrics для Prometheus и health-эндпоинты.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)

	logger.Infof("health checks: %s/healthz, %s/livez, %s/readyz", addr, addr, addr)
	return startHTTPServer(ctx, addr, logger.WithField("server", "metrics"), mux)
}

// startHTTPServer запускает сервер в фоне и останавливает его при отмене ctx.
func startHTTPServer(ctx context.Context, addr string, logger *log.Entry, handler http.Handler) *http.Server {
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		logger.Infof("HTTP сервер слушает %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("http server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown with error")
	}
}
