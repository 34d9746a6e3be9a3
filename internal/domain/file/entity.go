package file

import "time"

// File represents stored file metadata. The bytes themselves live on disk
// under the configured storage directory; Path is the stored name relative
// to that directory.
type File struct {
	ID        int64
	Filename  string // original filename as uploaded
	Path      string // timestamp-prefixed stored name on disk
	Size      int64  // size in bytes, counted from bytes actually written
	UserID    *int64 // optional owner
	MimeType  string
	CreatedAt time.Time
}
