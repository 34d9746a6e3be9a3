package file

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"

	"crm-services/internal/adapter/storage"
	domain "crm-services/internal/domain/file"
	pkgerrors "crm-services/pkg/errors"
	"crm-services/pkg/security"
)

// Repository defines the interface for file metadata access operations.
type Repository interface {
	Create(ctx context.Context, f *domain.File) (*domain.File, error)
	GetByID(ctx context.Context, id int64) (*domain.File, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, userID *int64, limit, offset int) ([]domain.File, error)
}

// FileUsecase implements the business logic for file operations. Blob
// content lives in store; metadata lives in repo. The metadata row is
// the source of truth for existence.
type FileUsecase struct {
	repo  Repository
	store storage.BlobStore
	log   *zap.Logger
}

// New creates a new instance of FileUsecase.
func New(r Repository, store storage.BlobStore, log *zap.Logger) *FileUsecase {
	return &FileUsecase{repo: r, store: store, log: log}
}

// Upload writes the content to blob storage and records the metadata.
// If the insert fails after the blob was written, the blob is removed
// so no orphaned files accumulate on disk.
func (uc *FileUsecase) Upload(ctx context.Context, in UploadFileRequest) (*domain.File, error) {
	uc.log.Info("uploading file", zap.String("filename", in.Filename))

	name := security.SanitizeFilename(in.Filename)
	if err := security.ValidateFilename(name); err != nil {
		uc.log.Warn("filename rejected", zap.String("filename", in.Filename), zap.Error(err))
		return nil, pkgerrors.NewValidationError("filename", err.Error())
	}

	storedName, size, err := uc.store.Save(name, in.Content)
	if err != nil {
		uc.log.Error("failed to store file content", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to store file content", err)
	}

	f, err := uc.repo.Create(ctx, &domain.File{
		Filename: name,
		Path:     storedName,
		Size:     size,
		UserID:   in.UserID,
		MimeType: in.MimeType,
	})
	if err != nil {
		uc.log.Error("failed to record file metadata", zap.Error(err))
		if rmErr := uc.store.Remove(storedName); rmErr != nil {
			uc.log.Warn("failed to clean up stored file", zap.String("filename", storedName), zap.Error(rmErr))
		}
		return nil, err
	}

	return f, nil
}

// GetFile retrieves file metadata by ID.
func (uc *FileUsecase) GetFile(ctx context.Context, id int64) (*domain.File, error) {
	if id <= 0 {
		uc.log.Warn("get file validation failed", zap.Int64("id", id))
		return nil, pkgerrors.NewValidationError("id", "must be a positive number")
	}

	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error("failed to get file", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return f, nil
}

// Download returns the metadata and an open reader for the file content.
// The caller owns the reader and must close it.
func (uc *FileUsecase) Download(ctx context.Context, id int64) (*domain.File, io.ReadCloser, error) {
	f, err := uc.GetFile(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rc, err := uc.store.Open(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			uc.log.Error("file content missing from disk", zap.Int64("id", id), zap.String("path", f.Path))
			return nil, nil, pkgerrors.NewNotFoundError("file", "file not found on disk")
		}
		uc.log.Error("failed to open file content", zap.Int64("id", id), zap.Error(err))
		return nil, nil, pkgerrors.NewInternalError("failed to open file content", err)
	}

	return f, rc, nil
}

// ListFiles retrieves a page of file records ordered by creation time
// descending, optionally filtered by user id.
func (uc *FileUsecase) ListFiles(ctx context.Context, in ListFilesRequest) ([]domain.File, error) {
	limit, offset := normalizePage(in.Limit, in.Offset)

	uc.log.Info("listing files", zap.Int("limit", limit), zap.Int("offset", offset))

	files, err := uc.repo.List(ctx, in.UserID, limit, offset)
	if err != nil {
		uc.log.Error("failed to list files", zap.Error(err))
		return nil, err
	}

	return files, nil
}

// DeleteFile removes the metadata row, then the blob. A blob already
// missing from disk is not an error.
func (uc *FileUsecase) DeleteFile(ctx context.Context, id int64) error {
	uc.log.Info("deleting file", zap.Int64("id", id))

	f, err := uc.GetFile(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error("failed to delete file record", zap.Int64("id", id), zap.Error(err))
		return err
	}

	if err := uc.store.Remove(f.Path); err != nil {
		uc.log.Warn("failed to remove file content", zap.String("path", f.Path), zap.Error(err))
	}

	return nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
