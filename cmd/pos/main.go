// Command pos — консольная касса: принимает заказы со stdin, отправляет их
// в сервис кухни и следит за статусом каждого заказа.
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
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/kitchen/internal/version"
	kitchenv1 "github.com/vladislavdragonenkov/kitchen/proto/kitchen/v1"
)

const itemsTerminator = "done"

func main() {
	addr := flag.String("addr", "localhost:50051", "kitchen service gRPC address")
	timeout := flag.Duration("timeout", 5*time.Second, "SubmitOrder timeout")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	conn, err := grpc.NewClient(*addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUserAgent(version.UserAgent("pos")),
	)
	if err != nil {
		log.WithError(err).Fatal("не удалось создать gRPC клиент")
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	terminal := newTerminal(kitchenv1.NewKitchenServiceClient(conn), os.Stdin, os.Stdout, *timeout)
	if err := terminal.run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("касса завершилась с ошибкой")
	}
}

// terminal — сеанс кассы. Вывод общий для меню и наблюдателей, поэтому защищён мьютексом.
type terminal struct {
	client  kitchenv1.KitchenServiceClient
	in      *bufio.Scanner
	timeout time.Duration

	outMu sync.Mutex
	out   io.Writer

	watchers sync.WaitGroup
}

func newTerminal(client kitchenv1.KitchenServiceClient, in io.Reader, out io.Writer, timeout time.Duration) *terminal {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &terminal{
		client:  client,
		in:      bufio.NewScanner(in),
		out:     out,
		timeout: timeout,
	}
}

// run крутит меню до выбора выхода или конца ввода. Наблюдатели
// останавливаются вместе с сеансом.
func (t *terminal) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		t.watchers.Wait()
	}()

	t.printf("POS started.\n")
	for {
		t.printf("\n=== Kitchen orders: POS ===\n1. New order\n2. Exit\nChoose an option: ")
		choice, ok := t.readLine()
		if !ok {
			return t.in.Err()
		}

		switch choice {
		case "1":
			customer, items, ok := t.readOrder()
			if !ok {
				return t.in.Err()
			}
			if len(items) == 0 {
				t.printf("Empty order! Add at least one item.\n")
				continue
			}
			if _, err := t.submit(ctx, customer, items); err != nil {
				t.printf("Failed to submit order: %s\n", status.Convert(err).Message())
			}
		case "2":
			return nil
		default:
			t.printf("Unknown option %q\n", choice)
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (t *terminal) readOrder() (string, []string, bool) {
	t.printf("Customer name: ")
	customer, ok := t.readLine()
	if !ok {
		return "", nil, false
	}

	t.printf("Enter the order items (type '%s' to finish):\n", itemsTerminator)
	var items []string
	for {
		t.printf("Item: ")
		item, ok := t.readLine()
		if !ok {
			return "", nil, false
		}
		if strings.EqualFold(item, itemsTerminator) {
			return customer, items, true
		}
		if item != "" {
			items = append(items, item)
		}
	}
}

// submit отправляет заказ и запускает наблюдателя за его статусом.
func (t *terminal) submit(ctx context.Context, customer string, items []string) (uint64, error) {
	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.client.SubmitOrder(callCtx, &kitchenv1.SubmitOrderRequest{Customer: customer, Items: items})
	if err != nil {
		return 0, err
	}
	t.printf("Server response: %s\n", resp.GetMessage())

	t.watchers.Add(1)
	go func() {
		defer t.watchers.Done()
		t.watch(ctx, resp.GetOrderId())
	}()
	return resp.GetOrderId(), nil
}

// watch печатает только статусы, отличающиеся от последнего показанного.
func (t *terminal) watch(ctx context.Context, orderID uint64) {
	stream, err := t.client.WatchStatus(ctx, &kitchenv1.WatchStatusRequest{OrderId: orderID})
	if err != nil {
		t.printf("Failed to watch order #%d: %s\n", orderID, status.Convert(err).Message())
		return
	}

	last := ""
	for {
		event, err := stream.Recv()
		if err != nil {
			if !errors.Is(err, io.EOF) && status.Code(err) != codes.Canceled && ctx.Err() == nil {
				t.printf("Watch of order #%d stopped: %s\n", orderID, status.Convert(err).Message())
			}
			return
		}
		if event.GetStatus() == last {
			continue
		}
		last = event.GetStatus()
		t.printf("\n[Order #%d] Status: %s (%s)\n", orderID, event.GetStatus(), event.GetTimestamp())
	}
}

func (t *terminal) readLine() (string, bool) {
	if !t.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(t.in.Text()), true
}

func (t *terminal) printf(format string, args ...any) {
	t.outMu.Lock()
	defer t.outMu.Unlock()
	_, _ = fmt.Fprintf(t.out, format, args...)
}
