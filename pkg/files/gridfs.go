package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"learnapp/pkg/common"
)

// GridFSStore is a BlobStore on a MongoDB GridFS bucket. Keys are used as
// both the file id and the file name.
type GridFSStore struct {
	open      func() (IGridBucket, error)
	publicURL string
	timeout   time.Duration
}

func NewGridFSStore(db *mongo.Database, publicURL string, timeout time.Duration) *GridFSStore {
	return &GridFSStore{
		open: func() (IGridBucket, error) {
			b, err := gridfs.NewBucket(db)
			if err != nil {
				return nil, err
			}
			return &GridBucket{Bucket: b}, nil
		},
		publicURL: strings.TrimRight(publicURL, "/"),
		timeout:   timeout,
	}
}

func (s *GridFSStore) GenerateKey() string {
	return KeyPrefix + uuid.NewString()
}

func (s *GridFSStore) URL(key string) string {
	return s.publicURL + DownloadPath + key
}

// bucket returns a fresh bucket with deadlines set, so concurrent calls do
// not share deadline state.
func (s *GridFSStore) bucket(ctx context.Context) (IGridBucket, error) {
	b, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("files/gridfs: can't open bucket: %w", err)
	}
	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := b.SetWriteDeadline(deadline); err != nil {
		return nil, fmt.Errorf("files/gridfs: can't set deadline: %w", err)
	}
	if err := b.SetReadDeadline(deadline); err != nil {
		return nil, fmt.Errorf("files/gridfs: can't set deadline: %w", err)
	}
	return b, nil
}

func (s *GridFSStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return "", err
	}
	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	if err := b.UploadFromStreamWithID(key, key, r, opts); err != nil {
		return "", fmt.Errorf("files/gridfs: upload of %s failed: %w", key, err)
	}
	return s.URL(key), nil
}

func (s *GridFSStore) Get(ctx context.Context, name string, w io.Writer) error {
	b, err := s.bucket(ctx)
	if err != nil {
		return err
	}
	_, err = b.DownloadToStreamByName(name, w)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return common.NotFound("file not found")
	}
	if err != nil {
		return fmt.Errorf("files/gridfs: download of %s failed: %w", name, err)
	}
	return nil
}

// Delete removes the blob. A blob that is already gone is not an error.
func (s *GridFSStore) Delete(ctx context.Context, key string) error {
	b, err := s.bucket(ctx)
	if err != nil {
		return err
	}
	err = b.Delete(key)
	if err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
		return fmt.Errorf("files/gridfs: delete of %s failed: %w", key, err)
	}
	return nil
}

// List returns the URLs of blobs whose name matches the regex pattern.
func (s *GridFSStore) List(ctx context.Context, pattern string) ([]string, error) {
	b, err := s.bucket(ctx)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"filename": bson.M{"$regex": pattern}}
	cur, err := b.Find(filter, options.GridFSFind().SetSort(bson.M{"filename": 1}))
	if err != nil {
		return nil, fmt.Errorf("files/gridfs: failed finding files: %w", err)
	}
	defer cur.Close(ctx)

	found := []struct {
		Name string `bson:"filename"`
	}{}
	if err := cur.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("files/gridfs: failed reading files from cursor: %w", err)
	}

	urls := make([]string, 0, len(found))
	for _, f := range found {
		urls = append(urls, s.URL(f.Name))
	}
	return urls, nil
}
