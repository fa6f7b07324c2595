package kitchenv1

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeClientConn struct {
	invoke    func(context.Context, string, any, any, ...grpc.CallOption) error
	newStream func(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error)
}

func (f *fakeClientConn) Invoke(ctx context.Context, method string, args any, reply any, opts ...grpc.CallOption) error {
	if f.invoke == nil {
		return errors.New("unexpected Invoke call")
	}
	return f.invoke(ctx, method, args, reply, opts...)
}

func (f *fakeClientConn) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	if f.newStream == nil {
		return nil, errors.New("not implemented")
	}
	return f.newStream(ctx, desc, method, opts...)
}

type grpcTestKitchenService struct {
	UnimplementedKitchenServiceServer
}

func (s *grpcTestKitchenService) SubmitOrder(_ context.Context, req *SubmitOrderRequest) (*SubmitOrderResponse, error) {
	return &SubmitOrderResponse{Success: true, Message: "ok " + req.GetCustomer(), OrderId: 1}, nil
}

func (s *grpcTestKitchenService) ClaimNextOrder(context.Context, *ClaimNextOrderRequest) (*ClaimNextOrderResponse, error) {
	return &ClaimNextOrderResponse{Order: &Order{Id: 1, Status: "IN_PROGRESS"}}, nil
}

func (s *grpcTestKitchenService) UpdateStatus(_ context.Context, req *UpdateStatusRequest) (*UpdateStatusResponse, error) {
	return &UpdateStatusResponse{Success: true, OrderId: req.GetOrderId()}, nil
}

func (s *grpcTestKitchenService) GetOrder(_ context.Context, req *GetOrderRequest) (*GetOrderResponse, error) {
	return &GetOrderResponse{Order: &Order{Id: req.GetOrderId()}}, nil
}

func TestKitchenServiceClientMethods(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		methods := map[string]int{}
		conn := &fakeClientConn{
			invoke: func(_ context.Context, method string, _ any, reply any, _ ...grpc.CallOption) error {
				methods[method]++
				switch out := reply.(type) {
				case *SubmitOrderResponse:
					out.OrderId = 1
				case *ClaimNextOrderResponse:
					out.Order = &Order{Id: 1}
				case *UpdateStatusResponse:
					out.OrderId = 1
				case *GetOrderResponse:
					out.Order = &Order{Id: 1}
				default:
					t.Fatalf("unexpected reply type: %T", out)
				}
				return nil
			},
		}

		client := NewKitchenServiceClient(conn)
		ctx := context.Background()
		if _, err := client.SubmitOrder(ctx, &SubmitOrderRequest{}); err != nil {
			t.Fatalf("SubmitOrder failed: %v", err)
		}
		if _, err := client.ClaimNextOrder(ctx, &ClaimNextOrderRequest{}); err != nil {
			t.Fatalf("ClaimNextOrder failed: %v", err)
		}
		if _, err := client.UpdateStatus(ctx, &UpdateStatusRequest{}); err != nil {
			t.Fatalf("UpdateStatus failed: %v", err)
		}
		if _, err := client.GetOrder(ctx, &GetOrderRequest{}); err != nil {
			t.Fatalf("GetOrder failed: %v", err)
		}

		for _, method := range []string{
			KitchenService_SubmitOrder_FullMethodName,
			KitchenService_ClaimNextOrder_FullMethodName,
			KitchenService_UpdateStatus_FullMethodName,
			KitchenService_GetOrder_FullMethodName,
		} {
			if methods[method] != 1 {
				t.Fatalf("expected method %s called exactly once, got %d", method, methods[method])
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		conn := &fakeClientConn{
			invoke: func(context.Context, string, any, any, ...grpc.CallOption) error {
				return status.Error(codes.Internal, "boom")
			},
			newStream: func(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
				return nil, status.Error(codes.Internal, "boom")
			},
		}
		client := NewKitchenServiceClient(conn)
		ctx := context.Background()

		for name, call := range map[string]func() error{
			"SubmitOrder":    func() error { _, err := client.SubmitOrder(ctx, &SubmitOrderRequest{}); return err },
			"ClaimNextOrder": func() error { _, err := client.ClaimNextOrder(ctx, &ClaimNextOrderRequest{}); return err },
			"UpdateStatus":   func() error { _, err := client.UpdateStatus(ctx, &UpdateStatusRequest{}); return err },
			"WatchStatus":    func() error { _, err := client.WatchStatus(ctx, &WatchStatusRequest{}); return err },
			"GetOrder":       func() error { _, err := client.GetOrder(ctx, &GetOrderRequest{}); return err },
		} {
			if err := call(); status.Code(err) != codes.Internal {
				t.Fatalf("%s expected Internal error, got %v", name, err)
			}
		}
	})

	t.Run("watch uses server stream descriptor", func(t *testing.T) {
		var gotMethod string
		var gotDesc *grpc.StreamDesc
		conn := &fakeClientConn{
			newStream: func(_ context.Context, desc *grpc.StreamDesc, method string, _ ...grpc.CallOption) (grpc.ClientStream, error) {
				gotDesc = desc
				gotMethod = method
				return nil, errors.New("stop")
			},
		}
		_, _ = NewKitchenServiceClient(conn).WatchStatus(context.Background(), &WatchStatusRequest{OrderId: 1})

		if gotMethod != KitchenService_WatchStatus_FullMethodName {
			t.Fatalf("unexpected method: %s", gotMethod)
		}
		if gotDesc == nil || !gotDesc.ServerStreams || gotDesc.ClientStreams {
			t.Fatalf("unexpected stream descriptor: %+v", gotDesc)
		}
	})
}

func TestUnimplementedKitchenServiceServer(t *testing.T) {
	var srv UnimplementedKitchenServiceServer
	ctx := context.Background()

	for name, call := range map[string]func() error{
		"SubmitOrder":    func() error { _, err := srv.SubmitOrder(ctx, &SubmitOrderRequest{}); return err },
		"ClaimNextOrder": func() error { _, err := srv.ClaimNextOrder(ctx, &ClaimNextOrderRequest{}); return err },
		"UpdateStatus":   func() error { _, err := srv.UpdateStatus(ctx, &UpdateStatusRequest{}); return err },
		"WatchStatus":    func() error { return srv.WatchStatus(&WatchStatusRequest{}, nil) },
		"GetOrder":       func() error { _, err := srv.GetOrder(ctx, &GetOrderRequest{}); return err },
	} {
		if err := call(); status.Code(err) != codes.Unimplemented {
			t.Fatalf("%s expected Unimplemented error, got %v", name, err)
		}
	}

	srv.mustEmbedUnimplementedKitchenServiceServer()
}

type grpcGeneratedHandlerCase struct {
	name   string
	method string
	call   func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error)
}

func TestGeneratedHandlers(t *testing.T) {
	srv := &grpcTestKitchenService{}
	ctx := context.Background()

	cases := []grpcGeneratedHandlerCase{
		{name: "SubmitOrder", method: KitchenService_SubmitOrder_FullMethodName, call: _KitchenService_SubmitOrder_Handler},
		{name: "ClaimNextOrder", method: KitchenService_ClaimNextOrder_FullMethodName, call: _KitchenService_ClaimNextOrder_Handler},
		{name: "UpdateStatus", method: KitchenService_UpdateStatus_FullMethodName, call: _KitchenService_UpdateStatus_Handler},
		{name: "GetOrder", method: KitchenService_GetOrder_FullMethodName, call: _KitchenService_GetOrder_Handler},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.call(srv, ctx, func(interface{}) error { return errors.New("decode failed") }, nil); err == nil {
				t.Fatalf("expected decode error")
			}

			resp, err := tc.call(srv, ctx, decodeFor(tc.name), nil)
			if err != nil {
				t.Fatalf("handler without interceptor failed: %v", err)
			}
			if resp == nil {
				t.Fatalf("expected non-nil response")
			}

			interceptorCalled := false
			resp, err = tc.call(srv, ctx, decodeFor(tc.name), func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
				interceptorCalled = true
				if info.FullMethod != tc.method {
					t.Fatalf("unexpected full method: got %s want %s", info.FullMethod, tc.method)
				}
				return handler(ctx, req)
			})
			if err != nil {
				t.Fatalf("handler with interceptor failed: %v", err)
			}
			if !interceptorCalled {
				t.Fatalf("interceptor was not called")
			}
			if resp == nil {
				t.Fatalf("expected non-nil response")
			}
		})
	}
}

func TestRegisterAndServiceDescriptor(t *testing.T) {
	g := grpc.NewServer()
	RegisterKitchenServiceServer(g, &grpcTestKitchenService{})

	if got, want := KitchenService_ServiceDesc.ServiceName, "kitchen.v1.KitchenService"; got != want {
		t.Fatalf("unexpected service name: got %s want %s", got, want)
	}
	if len(KitchenService_ServiceDesc.Methods) != 4 {
		t.Fatalf("expected 4 unary method descriptors, got %d", len(KitchenService_ServiceDesc.Methods))
	}
	if len(KitchenService_ServiceDesc.Streams) != 1 || !KitchenService_ServiceDesc.Streams[0].ServerStreams {
		t.Fatalf("expected one server stream descriptor")
	}
	if KitchenService_ServiceDesc.Metadata == "" {
		t.Fatalf("metadata should not be empty")
	}
}

func decodeFor(name string) func(interface{}) error {
	return func(v interface{}) error {
		switch req := v.(type) {
		case *SubmitOrderRequest:
			req.Customer = "Ana"
			req.Items = []string{"Pizza"}
		case *ClaimNextOrderRequest:
		case *UpdateStatusRequest:
			req.OrderId = 1
			req.Status = "READY"
		case *GetOrderRequest:
			req.OrderId = 1
		default:
			return status.Errorf(codes.Internal, "unexpected request type for %s: %T", name, req)
		}
		return nil
	}
}
