package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"crm-services/internal/domain/file"
	pkgerrors "crm-services/pkg/errors"
)

// FileRepoPG implements the file metadata repository interface using GORM.
type FileRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewFileRepoPG creates a new instance of FileRepoPG.
func NewFileRepoPG(db *gorm.DB, log *zap.Logger) *FileRepoPG {
	return &FileRepoPG{db: db, log: log}
}

// FileSchema represents the database schema for the files table.
type FileSchema struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Filename  string    `gorm:"size:255;not null"`
	Path      string    `gorm:"size:500;not null"`
	Size      int64     `gorm:"not null"`
	UserID    *int64    `gorm:"index:idx_files_user"`
	MimeType  string    `gorm:"size:100"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_files_created_at"`
}

// TableName specifies the table name for the FileSchema model.
func (FileSchema) TableName() string {
	return "files"
}

func (m *FileSchema) toDomain() *file.File {
	return &file.File{
		ID:        m.ID,
		Filename:  m.Filename,
		Path:      m.Path,
		Size:      m.Size,
		UserID:    m.UserID,
		MimeType:  m.MimeType,
		CreatedAt: m.CreatedAt,
	}
}

// Create inserts a new file metadata row. The caller must have written the
// bytes to disk already; the insert never runs when the disk write failed.
func (r *FileRepoPG) Create(ctx context.Context, f *file.File) (*file.File, error) {
	if f == nil {
		return nil, errors.New("file cannot be nil")
	}

	model := FileSchema{
		Filename: f.Filename,
		Path:     f.Path,
		Size:     f.Size,
		UserID:   f.UserID,
		MimeType: f.MimeType,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create file in db", zap.Error(err), zap.String("filename", f.Filename))
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	r.log.Info("file created in db", zap.Int64("id", model.ID))
	return model.toDomain(), nil
}

// GetByID retrieves file metadata by its unique ID.
func (r *FileRepoPG) GetByID(ctx context.Context, id int64) (*file.File, error) {
	var model FileSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("file not found", zap.Int64("id", id))
			return nil, pkgerrors.NewNotFoundError("file", "file not found")
		}
		r.log.Error("failed to get file from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get file: %w", err)
	}

	return model.toDomain(), nil
}

// Delete removes a file metadata row by ID. Removing the bytes on disk is
// the caller's responsibility and happens after the row is gone.
func (r *FileRepoPG) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&FileSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete file in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to delete file: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("file not found on delete", zap.Int64("id", id))
		return pkgerrors.NewNotFoundError("file", "file not found")
	}

	r.log.Info("file deleted in db", zap.Int64("id", id))
	return nil
}

// List retrieves file metadata ordered by creation time descending,
// optionally filtered by owner, with limit/offset pagination.
func (r *FileRepoPG) List(ctx context.Context, userID *int64, limit, offset int) ([]file.File, error) {
	q := r.db.WithContext(ctx).Model(&FileSchema{})
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var models []FileSchema
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&models).Error
	if err != nil {
		r.log.Error("failed to list files from db", zap.Error(err), zap.Int("limit", limit), zap.Int("offset", offset))
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]file.File, len(models))
	for i, model := range models {
		files[i] = *model.toDomain()
	}

	return files, nil
}
