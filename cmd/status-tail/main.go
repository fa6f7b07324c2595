// Command status-tail читает события статусов заказов из Kafka и печатает их.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
	"github.com/vladislavdragonenkov/kitchen/internal/messaging/kafka"
)

type config struct {
	brokers       []string
	topic         string
	group         string
	orderID       uint64
	fromBeginning bool
}

func parseConfig(args []string) (config, error) {
	fs := flag.NewFlagSet("status-tail", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfg config
	brokers := fs.String("brokers", envOr("KITCHEN_KAFKA_BROKERS", "localhost:9092"), "comma separated kafka brokers")
	fs.StringVar(&cfg.topic, "topic", envOr("KITCHEN_KAFKA_TOPIC", kafka.TopicOrderStatus), "status topic")
	fs.StringVar(&cfg.group, "group", "kitchen-status-tail", "consumer group id")
	fs.Uint64Var(&cfg.orderID, "order", 0, "print only events of this order (0 = all)")
	fs.BoolVar(&cfg.fromBeginning, "from-beginning", false, "start from the oldest retained offset")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	for _, broker := range strings.Split(*brokers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.brokers = append(cfg.brokers, broker)
		}
	}
	if len(cfg.brokers) == 0 {
		return cfg, errors.New("at least one broker is required")
	}
	if strings.TrimSpace(cfg.topic) == "" {
		return cfg, errors.New("topic is required")
	}
	if strings.TrimSpace(cfg.group) == "" {
		return cfg, errors.New("group is required")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// newPrinter печатает события; orderID != 0 оставляет только события этого заказа.
func newPrinter(out io.Writer, orderID uint64) func(context.Context, domain.StatusEvent) error {
	var mu sync.Mutex
	return func(_ context.Context, event domain.StatusEvent) error {
		if orderID != 0 && event.OrderID != orderID {
			return nil
		}
		mu.Lock()
		defer mu.Unlock()
		_, err := fmt.Fprintln(out, formatEvent(event))
		return err
	}
}

func formatEvent(event domain.StatusEvent) string {
	line := fmt.Sprintf("[Order #%d] Status: %s (%s)", event.OrderID, event.Status, event.Timestamp())
	if event.Customer != "" {
		line += " customer=" + event.Customer
	}
	return line
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("invalid flags")
	}

	opts := kafka.ConsumerOptions{
		MaxAttempts:   1,
		FromBeginning: cfg.fromBeginning,
		Logger:        log.WithField("component", "status-tail"),
	}
	consumer, err := kafka.NewStatusConsumer(cfg.brokers, cfg.group, cfg.topic, newPrinter(os.Stdout, cfg.orderID), opts)
	if err != nil {
		log.WithError(err).Fatal("не удалось подключиться к Kafka")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		log.WithError(err).Fatal("не удалось запустить consumer")
	}
	log.WithFields(log.Fields{"topic": cfg.topic, "brokers": cfg.brokers}).Info("слушаем события статусов")

	<-ctx.Done()
	if err := consumer.Stop(); err != nil {
		log.WithError(err).Warn("consumer остановлен с ошибкой")
	}
}
