package files

import (
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -source=mongo_interfaces.go -destination=mongo_interfaces_mock_test.go -package=files

type ( // Interfaces
	IGridBucket interface {
		SetWriteDeadline(time.Time) error
		SetReadDeadline(time.Time) error
		UploadFromStreamWithID(interface{}, string, io.Reader, ...*options.UploadOptions) error
		DownloadToStreamByName(string, io.Writer, ...*options.NameOptions) (int64, error)
		Delete(interface{}) error
		Find(interface{}, ...*options.GridFSFindOptions) (IMongoCursor, error)
	}

	IMongoCursor interface {
		Close(context.Context) error
		All(context.Context, interface{}) error
	}
)

type ( // Structs
	GridBucket struct {
		*gridfs.Bucket
	}

	MongoCursor struct{ cur *mongo.Cursor }
)

// GridBucket

func (b *GridBucket) Find(filter interface{}, opts ...*options.GridFSFindOptions) (IMongoCursor, error) {
	cur, err := b.Bucket.Find(filter, opts...)
	if err != nil {
		return nil, err
	}
	return &MongoCursor{cur: cur}, nil
}

// MongoCursor

func (cur *MongoCursor) Close(ctx context.Context) error {
	return cur.cur.Close(ctx)
}

func (cur *MongoCursor) All(ctx context.Context, result interface{}) error {
	return cur.cur.All(ctx, result)
}
