package file

import (
	"context"
	"io"

	domain "crm-services/internal/domain/file"
)

// Usecase defines the interface for file business logic operations.
type Usecase interface {
	Upload(ctx context.Context, in UploadFileRequest) (*domain.File, error)
	GetFile(ctx context.Context, id int64) (*domain.File, error)
	Download(ctx context.Context, id int64) (*domain.File, io.ReadCloser, error)
	ListFiles(ctx context.Context, in ListFilesRequest) ([]domain.File, error)
	DeleteFile(ctx context.Context, id int64) error
}
