package files

import (
	"context"
	"io"

	"learnapp/pkg/common"
	"learnapp/pkg/logger"
)

//go:generate mockgen -source=service.go -destination=service_mock_test.go -package=files
//go:generate mockgen -source=file.go -destination=file_mock_test.go -package=files

type IRefRepo interface {
	Add(context.Context, *FileRef) (int64, error)
	GetByURL(context.Context, string) (*FileRef, error)
	Delete(context.Context, int64) error
}

type Service struct {
	Blobs BlobStore
	Refs  IRefRepo
}

func NewFileService(blobs BlobStore, refs IRefRepo) *Service {
	return &Service{Blobs: blobs, Refs: refs}
}

// Upload stores an image and records its author. The blob is removed again
// when the record can't be written.
func (s *Service) Upload(ctx context.Context, authorId int64, contentType string, size int64, r io.Reader) (*FileRef, error) {
	if err := ValidateImage(contentType, size); err != nil {
		return nil, err
	}

	key := s.Blobs.GenerateKey()
	url, err := s.Blobs.Put(ctx, key, contentType, r)
	if err != nil {
		return nil, err
	}

	ref := &FileRef{AuthorId: authorId, Name: key, URL: url}
	if _, err := s.Refs.Add(ctx, ref); err != nil {
		if delErr := s.Blobs.Delete(ctx, key); delErr != nil {
			logger.Log(ctx).Errorf("files: orphan blob %s left behind: %v", key, delErr)
		}
		return nil, err
	}
	return ref, nil
}

func (s *Service) Delete(ctx context.Context, actorId int64, url string) error {
	if url == "" {
		return common.Validation("url is required")
	}
	ref, err := s.Refs.GetByURL(ctx, url)
	if err != nil {
		return err
	}
	if err := common.AssertOwner(ref, actorId); err != nil {
		return err
	}
	if err := s.Blobs.Delete(ctx, ref.Name); err != nil {
		return err
	}
	return s.Refs.Delete(ctx, ref.Id)
}

func (s *Service) Backgrounds(ctx context.Context) ([]string, error) {
	return s.Blobs.List(ctx, BackgroundsPattern)
}

func (s *Service) Download(ctx context.Context, name string, w io.Writer) error {
	return s.Blobs.Get(ctx, name, w)
}
