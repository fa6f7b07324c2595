// Package grpcsvc реализует gRPC API кухни поверх координатора.
package grpcsvc

import (
	"context"
	"errors"
	"fmt"
	"iter"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
	kitchenv1 "github.com/vladislavdragonenkov/kitchen/proto/kitchen/v1"
)

// Coordinator — операции координатора, которые использует gRPC слой.
type Coordinator interface {
	Submit(customer string, items []string) (domain.Order, error)
	ClaimNext() domain.Order
	UpdateStatus(id uint64, status domain.OrderStatus) (domain.Order, error)
	Watch(ctx context.Context, id uint64) (iter.Seq[domain.StatusEvent], error)
	Get(id uint64) (domain.Order, error)
}

// KitchenService реализует kitchenv1.KitchenServiceServer.
type KitchenService struct {
	kitchenv1.UnimplementedKitchenServiceServer

	coord  Coordinator
	logger *log.Entry
}

// NewKitchenService конструирует сервис с зависимостями.
func NewKitchenService(coord Coordinator, logger *log.Entry) *KitchenService {
	if logger == nil {
		logger = log.New().WithField("component", "kitchen-service")
	}
	return &KitchenService{coord: coord, logger: logger}
}

// SubmitOrder принимает заказ от кассы.
func (s *KitchenService) SubmitOrder(_ context.Context, req *kitchenv1.SubmitOrderRequest) (*kitchenv1.SubmitOrderResponse, error) {
	order, err := s.coord.Submit(req.GetCustomer(), req.GetItems())
	if err != nil {
		s.logger.WithError(err).WithField("customer", req.GetCustomer()).Warn("failed to submit order")
		return nil, toStatusError(err)
	}

	return &kitchenv1.SubmitOrderResponse{
		Success: true,
		Message: fmt.Sprintf("Order #%d received", order.ID),
		OrderId: order.ID,
	}, nil
}

// ClaimNextOrder отдаёт кухне следующий заказ или пустой ответ с NONE_AVAILABLE.
func (s *KitchenService) ClaimNextOrder(context.Context, *kitchenv1.ClaimNextOrderRequest) (*kitchenv1.ClaimNextOrderResponse, error) {
	return &kitchenv1.ClaimNextOrderResponse{Order: toProtoOrder(s.coord.ClaimNext())}, nil
}

// UpdateStatus записывает новый статус заказа.
func (s *KitchenService) UpdateStatus(_ context.Context, req *kitchenv1.UpdateStatusRequest) (*kitchenv1.UpdateStatusResponse, error) {
	order, err := s.coord.UpdateStatus(req.GetOrderId(), domain.OrderStatus(req.GetStatus()))
	if err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id": req.GetOrderId(),
			"status":   req.GetStatus(),
		}).Warn("failed to update status")
		return nil, toStatusError(err)
	}

	return &kitchenv1.UpdateStatusResponse{
		Success: true,
		Message: fmt.Sprintf("Order #%d status updated to %s", order.ID, req.GetStatus()),
		OrderId: order.ID,
	}, nil
}

// WatchStatus стримит текущий статус заказа и все последующие изменения
// до отключения клиента или остановки сервера.
func (s *KitchenService) WatchStatus(req *kitchenv1.WatchStatusRequest, stream grpc.ServerStreamingServer[kitchenv1.StatusEvent]) error {
	ctx := stream.Context()
	logger := s.logger.WithField("order_id", req.GetOrderId())

	events, err := s.coord.Watch(ctx, req.GetOrderId())
	if err != nil {
		logger.WithError(err).Warn("watch rejected")
		return toStatusError(err)
	}

	logger.Debug("наблюдатель подключён")
	for event := range events {
		if err := stream.Send(toProtoEvent(event)); err != nil {
			logger.WithError(err).WithField("status", event.Status).Warn("не удалось доставить событие наблюдателю")
			return toStatusError(fmt.Errorf("%w: %v", domain.ErrWatcherUnavailable, err))
		}
	}
	logger.Debug("наблюдатель отключён")

	if err := ctx.Err(); err != nil {
		return status.FromContextError(err).Err()
	}
	return nil
}

// GetOrder возвращает заказ и историю его статусов.
func (s *KitchenService) GetOrder(_ context.Context, req *kitchenv1.GetOrderRequest) (*kitchenv1.GetOrderResponse, error) {
	order, err := s.coord.Get(req.GetOrderId())
	if err != nil {
		return nil, toStatusError(err)
	}

	history := make([]*kitchenv1.StatusChange, 0, len(order.History))
	for _, change := range order.History {
		history = append(history, &kitchenv1.StatusChange{
			Status:    string(change.Status),
			Timestamp: change.Timestamp(),
		})
	}

	return &kitchenv1.GetOrderResponse{Order: toProtoOrder(order), History: history}, nil
}

// toStatusError переводит доменные ошибки в gRPC статусы.
func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case domain.IsInvalidArgument(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrOrderNotFound):
		return status.Error(codes.NotFound, err.Error())
	case domain.IsUnavailable(err):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toProtoOrder(order domain.Order) *kitchenv1.Order {
	return &kitchenv1.Order{
		Id:       order.ID,
		Customer: order.Customer,
		Items:    order.Items,
		Status:   string(order.Status),
	}
}

func toProtoEvent(event domain.StatusEvent) *kitchenv1.StatusEvent {
	return &kitchenv1.StatusEvent{
		OrderId:   event.OrderID,
		Status:    string(event.Status),
		Timestamp: event.Timestamp(),
	}
}
