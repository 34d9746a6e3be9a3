package file

import "io"

// UploadFileRequest represents a file upload. Content is streamed to
// blob storage, not buffered in memory.
type UploadFileRequest struct {
	Filename string `validate:"required,min=1,max=255"`
	MimeType string `validate:"omitempty,max=255"`
	UserID   *int64
	Content  io.Reader
}

// ListFilesRequest represents pagination parameters for listing files,
// optionally filtered by the owning user.
type ListFilesRequest struct {
	UserID *int64
	Limit  int
	Offset int
}
