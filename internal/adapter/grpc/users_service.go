package grpc

import (
	"context"

	pb "crm-services/api/gen/go/users"
	domain "crm-services/internal/domain/user"
	"crm-services/internal/usecase/user"
	pkgerrors "crm-services/pkg/errors"
)

// UsersServiceServer implements the gRPC users service
type UsersServiceServer struct {
	pb.UnimplementedUsersServiceServer
	uc user.Usecase
}

// NewUsersServiceServer creates a new gRPC users service server
func NewUsersServiceServer(uc user.Usecase) *UsersServiceServer {
	return &UsersServiceServer{uc: uc}
}

func toUserProto(u *domain.User) *pb.User {
	return &pb.User{
		Id:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt.Unix(),
		UpdatedAt: u.UpdatedAt.Unix(),
	}
}

// GetUser handles gRPC GetUser request
func (s *UsersServiceServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.User, error) {
	u, err := s.uc.GetUser(ctx, req.GetId())
	if err != nil {
		return nil, pkgerrors.GRPCStatus(err).Err()
	}
	return toUserProto(u), nil
}

// CreateUser handles gRPC CreateUser request
func (s *UsersServiceServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.User, error) {
	u, err := s.uc.CreateUser(ctx, user.CreateUserRequest{
		Email: req.GetEmail(),
		Name:  req.GetName(),
		Role:  req.GetRole(),
	})
	if err != nil {
		return nil, pkgerrors.GRPCStatus(err).Err()
	}
	return toUserProto(u), nil
}
