package file

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "crm-services/internal/domain/file"
	pkgerrors "crm-services/pkg/errors"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, f *domain.File) (*domain.File, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.File), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.File), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, userID *int64, limit, offset int) ([]domain.File, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.File), args.Error(1)
}

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Save(originalName string, r io.Reader) (string, int64, error) {
	args := m.Called(originalName, r)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlobStore) Open(storedName string) (io.ReadCloser, error) {
	args := m.Called(storedName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockBlobStore) Remove(storedName string) error {
	args := m.Called(storedName)
	return args.Error(0)
}

func setupTestUsecase(t *testing.T) (*FileUsecase, *MockRepository, *MockBlobStore) {
	mockRepo := new(MockRepository)
	mockStore := new(MockBlobStore)
	uc := New(mockRepo, mockStore, zaptest.NewLogger(t))
	return uc, mockRepo, mockStore
}

func TestUpload_Success(t *testing.T) {
	uc, mockRepo, mockStore := setupTestUsecase(t)
	ctx := context.Background()
	content := strings.NewReader("data")

	mockStore.On("Save", "report.pdf", content).Return("20240101_120000_report.pdf", int64(4), nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(f *domain.File) bool {
		return f.Filename == "report.pdf" && f.Path == "20240101_120000_report.pdf" && f.Size == 4
	})).Return(&domain.File{ID: 1, Filename: "report.pdf", Path: "20240101_120000_report.pdf", Size: 4}, nil)

	f, err := uc.Upload(ctx, UploadFileRequest{Filename: "report.pdf", Content: content})

	require.NoError(t, err)
	assert.Equal(t, int64(1), f.ID)
	// the record keeps the name as uploaded; the stored name is an
	// internal disk detail
	assert.Equal(t, "report.pdf", f.Filename)
	mockRepo.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestUpload_FilenameWhitespaceTrimmed(t *testing.T) {
	uc, mockRepo, mockStore := setupTestUsecase(t)
	ctx := context.Background()
	content := strings.NewReader("data")

	mockStore.On("Save", "report.pdf", content).Return("20240101_120000_report.pdf", int64(4), nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(f *domain.File) bool {
		return f.Filename == "report.pdf"
	})).Return(&domain.File{ID: 1, Filename: "report.pdf", Path: "20240101_120000_report.pdf", Size: 4}, nil)

	_, err := uc.Upload(ctx, UploadFileRequest{Filename: "  report.pdf  ", Content: content})

	require.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestUpload_TraversalRejected(t *testing.T) {
	uc, mockRepo, mockStore := setupTestUsecase(t)

	_, err := uc.Upload(context.Background(), UploadFileRequest{
		Filename: "../../etc/passwd",
		Content:  strings.NewReader("x"),
	})

	require.Error(t, err)
	var verr *pkgerrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	mockStore.AssertNotCalled(t, "Save")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUpload_InsertFailureCleansUpBlob(t *testing.T) {
	uc, mockRepo, mockStore := setupTestUsecase(t)
	ctx := context.Background()
	content := strings.NewReader("data")

	mockStore.On("Save", "a.txt", content).Return("20240101_120000_a.txt", int64(4), nil)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))
	mockStore.On("Remove", "20240101_120000_a.txt").Return(nil)

	_, err := uc.Upload(ctx, UploadFileRequest{Filename: "a.txt", Content: content})

	require.Error(t, err)
	mockStore.AssertCalled(t, "Remove", "20240101_120000_a.txt")
}

func TestDownload_MissingBlobIsNotFound(t *testing.T) {
	uc, mockRepo, mockStore := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(1)).
		Return(&domain.File{ID: 1, Filename: "a.txt", Path: "20240101_120000_a.txt"}, nil)
	mockStore.On("Open", "20240101_120000_a.txt").Return(nil, os.ErrNotExist)

	_, _, err := uc.Download(ctx, 1)

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestDownload_Success(t *testing.T) {
	uc, mockRepo, mockStore := setupTestUsecase(t)
	ctx := context.Background()

	rc := io.NopCloser(strings.NewReader("bytes"))
	mockRepo.On("GetByID", ctx, int64(2)).
		Return(&domain.File{ID: 2, Filename: "b.txt", Path: "20240101_120000_b.txt", Size: 5}, nil)
	mockStore.On("Open", "20240101_120000_b.txt").Return(rc, nil)

	f, got, err := uc.Download(ctx, 2)

	require.NoError(t, err)
	defer got.Close()
	assert.Equal(t, int64(5), f.Size)
	assert.Equal(t, "b.txt", f.Filename)

	data, err := io.ReadAll(got)
	require.NoError(t, err)
	assert.Equal(t, "bytes", string(data))
}

func TestDeleteFile_RemovesRowThenBlob(t *testing.T) {
	uc, mockRepo, mockStore := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(3)).
		Return(&domain.File{ID: 3, Filename: "c.txt", Path: "20240101_120000_c.txt"}, nil)
	mockRepo.On("Delete", ctx, int64(3)).Return(nil)
	mockStore.On("Remove", "20240101_120000_c.txt").Return(nil)

	require.NoError(t, uc.DeleteFile(ctx, 3))
	mockRepo.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestDeleteFile_BlobRemoveFailureTolerated(t *testing.T) {
	uc, mockRepo, mockStore := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(4)).
		Return(&domain.File{ID: 4, Filename: "d.txt", Path: "20240101_120000_d.txt"}, nil)
	mockRepo.On("Delete", ctx, int64(4)).Return(nil)
	mockStore.On("Remove", "20240101_120000_d.txt").Return(errors.New("disk error"))

	// metadata row is the source of truth; blob cleanup is best effort
	require.NoError(t, uc.DeleteFile(ctx, 4))
}
