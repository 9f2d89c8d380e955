package files

import (
	"context"
	"io"
	"strings"

	"learnapp/pkg/common"
)

const (
	// MaxFileSize is exclusive.
	MaxFileSize = 3000000

	// DownloadPath is where the API serves blobs by name.
	DownloadPath       = "/api/file/"
	KeyPrefix          = "images/"
	BackgroundsPattern = `^static/[0-9]`
)

// BlobStore keeps file contents under a key and hands out public URLs.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	Get(ctx context.Context, name string, w io.Writer) error
	Delete(ctx context.Context, key string) error
	GenerateKey() string
	List(ctx context.Context, pattern string) ([]string, error)
}

// FileRef records who uploaded a blob.
type FileRef struct {
	Id       int64  `json:"id"`
	AuthorId int64  `json:"author"`
	Name     string `json:"name"`
	URL      string `json:"url"`
}

func (f *FileRef) OwnerId() int64 { return f.AuthorId }

func ValidateImage(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return common.Validation("only images can be uploaded")
	}
	if size >= MaxFileSize {
		return common.Validation("file must be smaller than %d bytes", MaxFileSize)
	}
	return nil
}
