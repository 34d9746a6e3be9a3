package grpc

import (
	"context"

	pb "crm-services/api/gen/go/files"
	"crm-services/internal/usecase/file"
	pkgerrors "crm-services/pkg/errors"
)

// FilesServiceServer implements the gRPC files service
type FilesServiceServer struct {
	pb.UnimplementedFilesServiceServer
	uc file.Usecase
}

// NewFilesServiceServer creates a new gRPC files service server
func NewFilesServiceServer(uc file.Usecase) *FilesServiceServer {
	return &FilesServiceServer{uc: uc}
}

// GetFile handles gRPC GetFile request
func (s *FilesServiceServer) GetFile(ctx context.Context, req *pb.GetFileRequest) (*pb.File, error) {
	f, err := s.uc.GetFile(ctx, req.GetId())
	if err != nil {
		return nil, pkgerrors.GRPCStatus(err).Err()
	}

	out := &pb.File{
		Id:        f.ID,
		Filename:  f.Filename,
		Path:      f.Path,
		Size:      f.Size,
		MimeType:  f.MimeType,
		CreatedAt: f.CreatedAt.Unix(),
	}
	if f.UserID != nil {
		out.UserId = *f.UserID
	}
	return out, nil
}
