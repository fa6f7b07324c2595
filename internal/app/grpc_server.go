package app

import (
	"context"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const defaultWorkers = 10

// newGRPCServer создаёт сервер с ограниченным пулом обработчиков и метриками.
// Unary-запросы ждут свободный слот семафора; долгие stream-вызовы не занимают его.
func newGRPCServer(workers int, logger *log.Entry) (*grpc.Server, *promgrpc.ServerMetrics) {
	if workers <= 0 {
		workers = defaultWorkers
	}

	// Счётчики DefaultServerMetrics регистрируются пакетом при загрузке,
	// только они попадают в /metrics.
	grpcMetrics := promgrpc.DefaultServerMetrics
	logger.WithField("workers", workers).Debug("gRPC сервер: пул обработчиков настроен")

	server := grpc.NewServer(
		grpc.NumStreamWorkers(uint32(workers)),
		grpc.ChainUnaryInterceptor(
			grpcMetrics.UnaryServerInterceptor(),
			concurrencyLimitInterceptor(semaphore.NewWeighted(int64(workers))),
		),
		grpc.ChainStreamInterceptor(grpcMetrics.StreamServerInterceptor()),
	)
	return server, grpcMetrics
}

func concurrencyLimitInterceptor(sem *semaphore.Weighted) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, status.FromContextError(err).Err()
		}
		defer sem.Release(1)
		return handler(ctx, req)
	}
}
