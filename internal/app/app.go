// Package app собирает сервис кухни: координатор, gRPC API, outbox, журнал,
// брокер событий и HTTP-эндпоинты метрик и здоровья.
package app

import (
	"context"
	"errors"
	"net"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	healthcheck "github.com/vladislavdragonenkov/kitchen/internal/health"
	grpcsvc "github.com/vladislavdragonenkov/kitchen/internal/service/grpc"
	"github.com/vladislavdragonenkov/kitchen/internal/version"
	kitchenv1 "github.com/vladislavdragonenkov/kitchen/proto/kitchen/v1"
)

// Run запускает сервис и блокируется до отмены ctx или падения gRPC сервера.
//
// Порядок остановки: health NOT_SERVING, закрытие координатора (завершает
// WatchStatus стримы), GracefulStop, остановка outbox worker с дочиткой backlog,
// закрытие журнала и брокера.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")
	logger.WithField("build", version.String()).Info("запуск сервиса кухни")

	deps, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.close()

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		deps.worker.Run(workerCtx)
	}()

	grpcServer, grpcMetrics := newGRPCServer(cfg.Workers, logger)
	kitchenv1.RegisterKitchenServiceServer(grpcServer, grpcsvc.NewKitchenService(deps.coord, logger.WithField("layer", "grpc")))
	grpcMetrics.InitializeMetrics(grpcServer)

	reflection.Register(grpcServer)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(kitchenv1.KitchenService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	deps.registerCheckers(healthHandler)
	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 5 * time.Second
	}
	stopBackground := func() {
		shutdownHTTP(metricsSrv, logger)
		shutdownOutboxWorker(cancelWorker, workerDone, logger)
		drainOutbox(deps, shutdownTimeout, logger)
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		deps.coord.Close()
		stopBackground()
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("gRPC сервер слушает %s", lis.Addr())
		errCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем gRPC сервер")
		healthServer.Shutdown()
		deps.coord.Close()
		gracefulStop(grpcServer, shutdownTimeout, logger)
		stopBackground()
		return ctx.Err()
	case err := <-errCh:
		deps.coord.Close()
		stopBackground()
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}

func gracefulStop(server *grpc.Server, timeout time.Duration, logger *log.Entry) {
	stopped := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(timeout):
		logger.Warn("graceful stop превысил таймаут, принудительно останавливаем")
		server.Stop()
	}
}

// shutdownOutboxWorker отменяет воркер и ждёт его выхода.
func shutdownOutboxWorker(cancel context.CancelFunc, done <-chan struct{}, logger *log.Entry) {
	if cancel == nil {
		return
	}
	cancel()
	if done == nil {
		return
	}
	select {
	case <-done:
		logger.Info("outbox worker остановлен")
	case <-time.After(5 * time.Second):
		logger.Warn("outbox worker не остановился вовремя")
	}
}

// drainOutbox публикует события, накопившиеся к моменту остановки.
func drainOutbox(deps *runtimeDependencies, timeout time.Duration, logger *log.Entry) {
	if deps == nil || deps.worker == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	deps.worker.Drain(ctx)
	if stats, err := deps.outboxRepo.Stats(); err == nil && stats.PendingCount > 0 {
		logger.WithField("pending", stats.PendingCount).Warn("outbox не опустошён к остановке")
	}
}
