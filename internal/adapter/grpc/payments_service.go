package grpc

import (
	"context"

	pb "crm-services/api/gen/go/payments"
	domain "crm-services/internal/domain/payment"
	"crm-services/internal/usecase/payment"
	pkgerrors "crm-services/pkg/errors"
)

// PaymentsServiceServer implements the gRPC payments service
type PaymentsServiceServer struct {
	pb.UnimplementedPaymentsServiceServer
	uc payment.Usecase
}

// NewPaymentsServiceServer creates a new gRPC payments service server
func NewPaymentsServiceServer(uc payment.Usecase) *PaymentsServiceServer {
	return &PaymentsServiceServer{uc: uc}
}

func toPaymentProto(p *domain.Payment) *pb.Payment {
	return &pb.Payment{
		Id:          p.ID,
		UserId:      p.UserID,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Status:      p.Status,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Unix(),
		UpdatedAt:   p.UpdatedAt.Unix(),
	}
}

// CreatePayment handles gRPC CreatePayment request
func (s *PaymentsServiceServer) CreatePayment(ctx context.Context, req *pb.CreatePaymentRequest) (*pb.Payment, error) {
	p, err := s.uc.CreatePayment(ctx, payment.CreatePaymentRequest{
		UserID:      req.GetUserId(),
		Amount:      req.GetAmount(),
		Currency:    req.GetCurrency(),
		Description: req.GetDescription(),
	})
	if err != nil {
		return nil, pkgerrors.GRPCStatus(err).Err()
	}
	return toPaymentProto(p), nil
}

// GetPayment handles gRPC GetPayment request
func (s *PaymentsServiceServer) GetPayment(ctx context.Context, req *pb.GetPaymentRequest) (*pb.Payment, error) {
	p, err := s.uc.GetPayment(ctx, req.GetId())
	if err != nil {
		return nil, pkgerrors.GRPCStatus(err).Err()
	}
	return toPaymentProto(p), nil
}
