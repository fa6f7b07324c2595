package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/kitchen/internal/coordinator"
	"github.com/vladislavdragonenkov/kitchen/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/kitchen/internal/health"
	"github.com/vladislavdragonenkov/kitchen/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/kitchen/internal/metrics"
	"github.com/vladislavdragonenkov/kitchen/internal/service/outbox"
	"github.com/vladislavdragonenkov/kitchen/internal/storage/memory"
	"github.com/vladislavdragonenkov/kitchen/internal/storage/postgres"
)

// runtimeDependencies — собранный граф зависимостей сервиса.
// Порядок сборки: outbox → publishers → worker → sink → coordinator.
type runtimeDependencies struct {
	coord      *coordinator.Coordinator
	metrics    *metrics.KitchenMetrics
	outboxRepo *memory.OutboxRepository
	journal    domain.JournalRepository
	worker     *outbox.Worker

	checkers map[string]healthcheck.Checker
	closers  []func()
}

func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*runtimeDependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}
	deps := &runtimeDependencies{
		outboxRepo: memory.NewOutboxRepository(),
		checkers:   make(map[string]healthcheck.Checker),
	}

	if err := deps.initJournal(ctx, cfg, logger); err != nil {
		deps.close()
		return nil, err
	}

	publishers := outbox.FanOut{outbox.NewJournalPublisher(deps.journal)}
	brokerPublisher, dlqPublisher, err := deps.initBroker(cfg, logger)
	if err != nil {
		deps.close()
		return nil, err
	}
	if brokerPublisher != nil {
		breaker := outbox.NewBreakerPublisher(brokerPublisher, cfg.BrokerBreakerFailures, cfg.BrokerBreakerReset, logger.WithField("layer", "broker-breaker"))
		deps.checkers["broker_circuit"] = newBreakerChecker(breaker)
		publishers = append(publishers, breaker)
	}

	deps.metrics = metrics.NewKitchenMetrics()
	workerOpts := []outbox.Option{
		outbox.WithLogger(logger.WithField("layer", "outbox")),
		outbox.WithMetrics(deps.metrics),
		outbox.WithPollInterval(cfg.OutboxPollInterval),
		outbox.WithBatchSize(cfg.OutboxBatchSize),
		outbox.WithMaxAttempts(cfg.OutboxMaxAttempts),
		outbox.WithRetryBaseDelay(cfg.OutboxRetryDelay),
	}
	if dlqPublisher != nil {
		workerOpts = append(workerOpts, outbox.WithDLQPublisher(dlqPublisher))
	}
	deps.worker = outbox.NewWorker(deps.outboxRepo, publishers, workerOpts...)

	deps.coord = coordinator.New(
		coordinator.WithLogger(logger.WithField("layer", "coordinator")),
		coordinator.WithMetrics(deps.metrics),
		coordinator.WithEventSink(outbox.NewSink(deps.outboxRepo, deps.worker, logger.WithField("layer", "outbox-sink"))),
		coordinator.WithPollInterval(cfg.WatchPollInterval),
	)

	deps.checkers["coordinator"] = healthcheck.NewQueueChecker(func() healthcheck.QueueSnapshot {
		stats := deps.coord.Stats()
		return healthcheck.QueueSnapshot{Depth: len(stats.Queue), Closed: stats.Closed}
	}, cfg.MaxQueueDepth)
	deps.checkers["outbox"] = healthcheck.NewBacklogChecker("outbox", func() (time.Time, error) {
		stats, err := deps.outboxRepo.Stats()
		return stats.OldestPendingAt, err
	}, cfg.OutboxMaxAge, nil)

	return deps, nil
}

func (d *runtimeDependencies) initJournal(ctx context.Context, cfg Config, logger *log.Entry) error {
	driver := strings.ToLower(strings.TrimSpace(cfg.JournalDriver))
	switch driver {
	case "", JournalDriverMemory:
		d.journal = memory.NewJournalRepository()
		logger.Info("журнал статусов: memory")
		return nil
	case JournalDriverPostgres:
	default:
		return fmt.Errorf("unsupported journal driver: %s", cfg.JournalDriver)
	}

	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return errors.New("postgres journal requires PostgresDSN")
	}

	store, err := postgres.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	d.closers = append(d.closers, func() {
		if err := store.Close(); err != nil {
			logger.WithError(err).Warn("failed to close postgres store")
		}
	})

	if cfg.PostgresAutoMigrate {
		applied, err := store.MigrateUp(ctx, 0)
		if err != nil {
			return fmt.Errorf("migrate journal schema: %w", err)
		}
		logger.WithField("applied", applied).Info("миграции журнала применены")
	}

	d.journal = postgres.NewJournalRepository(store)
	d.checkers["journal"] = healthcheck.NewSimpleChecker("journal", func() error {
		return store.Ping(context.Background())
	})
	logger.Info("журнал статусов: postgres")
	return nil
}

// initBroker подключает брокер событий. Недоступный брокер не мешает запуску:
// сервис работает без внешней публикации, как и при EventBrokerNone.
func (d *runtimeDependencies) initBroker(cfg Config, logger *log.Entry) (publisher, dlq domain.OutboxPublisher, err error) {
	switch strings.ToLower(strings.TrimSpace(cfg.EventBroker)) {
	case "", EventBrokerNone:
		return nil, nil, nil

	case EventBrokerKafka:
		producer, err := initKafkaProducer(cfg.KafkaBrokers, logger)
		if err != nil || producer == nil {
			return nil, nil, nil
		}
		d.closers = append(d.closers, func() { closeKafka(producer, logger) })
		d.checkers["broker"] = healthcheck.NewSimpleChecker("kafka", producer.Ready)
		return kafka.NewOutboxPublisher(producer, cfg.KafkaTopic),
			kafka.NewOutboxPublisher(producer, kafka.TopicDeadLetterQueue), nil

	case EventBrokerRabbitMQ:
		rabbit, err := initRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange, logger)
		if err != nil || rabbit == nil {
			return nil, nil, nil
		}
		d.closers = append(d.closers, func() { closeRabbit(rabbit, logger) })
		d.checkers["broker"] = healthcheck.NewSimpleChecker("rabbitmq", rabbit.Ready)
		return rabbit, nil, nil

	default:
		return nil, nil, fmt.Errorf("unsupported event broker: %s", cfg.EventBroker)
	}
}

// newBreakerChecker сообщает degraded, пока предохранитель брокера не закрыт.
func newBreakerChecker(breaker *outbox.BreakerPublisher) *healthcheck.SimpleChecker {
	return healthcheck.NewSimpleChecker("broker_circuit", func() error {
		if state := breaker.State(); state != outbox.CircuitClosed {
			return fmt.Errorf("%w: circuit %s", healthcheck.ErrDegraded, state)
		}
		return nil
	})
}

func (d *runtimeDependencies) registerCheckers(handler *healthcheck.Handler) {
	for name, checker := range d.checkers {
		handler.RegisterChecker(name, checker)
	}
}

// close освобождает ресурсы в обратном порядке.
func (d *runtimeDependencies) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
}
