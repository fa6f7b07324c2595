// Command kitchen — консоль кухни: периодически забирает следующий заказ,
// показывает его и по ENTER отмечает готовым.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/kitchen/internal/version"
	kitchenv1 "github.com/vladislavdragonenkov/kitchen/proto/kitchen/v1"
)

const (
	statusReady         = "READY"
	statusNoneAvailable = "NONE_AVAILABLE"
)

func main() {
	addr := flag.String("addr", "localhost:50051", "kitchen service gRPC address")
	poll := flag.Duration("poll", 2*time.Second, "interval between ClaimNextOrder attempts")
	timeout := flag.Duration("timeout", 5*time.Second, "per-RPC timeout")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	conn, err := grpc.NewClient(*addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUserAgent(version.UserAgent("kitchen")),
	)
	if err != nil {
		log.WithError(err).Fatal("не удалось создать gRPC клиент")
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := &station{
		client:  kitchenv1.NewKitchenServiceClient(conn),
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		poll:    *poll,
		timeout: *timeout,
	}
	if err := st.run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("кухня завершилась с ошибкой")
	}
}

// station — рабочее место повара: один заказ в работе за раз.
type station struct {
	client  kitchenv1.KitchenServiceClient
	in      *bufio.Reader
	out     io.Writer
	poll    time.Duration
	timeout time.Duration
}

// run работает до отмены ctx или конца ввода. Ошибки RPC не прерывают цикл:
// сервер мог быть временно недоступен.
func (s *station) run(ctx context.Context) error {
	if s.poll <= 0 {
		s.poll = 2 * time.Second
	}
	if s.timeout <= 0 {
		s.timeout = 5 * time.Second
	}

	s.printf("Kitchen started. Waiting for orders...\n")
	idle := false
	for {
		order, err := s.claim(ctx)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.printf("Failed to claim order: %s\n", status.Convert(err).Message())
			idle = false
		case order.GetId() == 0 || order.GetStatus() == statusNoneAvailable:
			if !idle {
				s.printf("No orders waiting.\n")
				idle = true
			}
		default:
			idle = false
			s.show(order)
			s.printf("Press ENTER when order #%d is ready... ", order.GetId())
			if _, err := s.in.ReadString('\n'); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			if err := s.markReady(ctx, order.GetId()); err != nil {
				s.printf("Failed to update order #%d: %s\n", order.GetId(), status.Convert(err).Message())
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.poll):
		}
	}
}

func (s *station) claim(ctx context.Context) (*kitchenv1.Order, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.ClaimNextOrder(callCtx, &kitchenv1.ClaimNextOrderRequest{})
	if err != nil {
		return nil, err
	}
	return resp.GetOrder(), nil
}

func (s *station) markReady(ctx context.Context, orderID uint64) error {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.UpdateStatus(callCtx, &kitchenv1.UpdateStatusRequest{OrderId: orderID, Status: statusReady})
	if err != nil {
		return err
	}
	s.printf("%s\n", resp.GetMessage())
	return nil
}

func (s *station) show(order *kitchenv1.Order) {
	var b strings.Builder
	b.WriteString("\n=== Order in preparation ===\n")
	fmt.Fprintf(&b, "Order #%d\n", order.GetId())
	fmt.Fprintf(&b, "Customer: %s\n", order.GetCustomer())
	b.WriteString("\nItems:\n")
	for _, item := range order.GetItems() {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	fmt.Fprintf(&b, "\nStatus: %s\n", order.GetStatus())
	b.WriteString("============================\n")
	s.printf("%s", b.String())
}

func (s *station) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
