package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"grip-attendance/core/storage"

	"github.com/minio/minio-go/v7"
)

// ClientFactory creates the storage client on first remote access.
type ClientFactory func() (storage.Client, error)

// Opener opens input locations for reading.
type Opener struct {
	factory ClientFactory
	client  storage.Client
}

// NewOpener creates an Opener. factory may be nil when only local paths are used.
func NewOpener(factory ClientFactory) *Opener {
	return &Opener{factory: factory}
}

// Open returns a reader for the location. The caller closes it.
// Remote objects are checked with a stat call first so that a missing object
// fails here rather than on the first read.
func (o *Opener) Open(ctx context.Context, loc Location) (io.ReadCloser, error) {
	if !loc.IsRemote() {
		f, err := os.Open(loc.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", loc.Path, err)
		}
		return f, nil
	}

	client, err := o.storageClient()
	if err != nil {
		return nil, err
	}

	if _, err := client.StatObject(ctx, loc.Bucket, loc.Key, minio.StatObjectOptions{}); err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", loc, err)
	}

	rc, err := client.GetObject(ctx, loc.Bucket, loc.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", loc, err)
	}
	return rc, nil
}

// Check verifies that a location can be opened, without reading it.
func (o *Opener) Check(ctx context.Context, loc Location) error {
	if !loc.IsRemote() {
		f, err := os.Open(loc.Path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", loc.Path, err)
		}
		return f.Close()
	}

	client, err := o.storageClient()
	if err != nil {
		return err
	}
	exists, err := client.BucketExists(ctx, loc.Bucket)
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", loc.Bucket, err)
	}
	if !exists {
		return fmt.Errorf("%w: bucket %s does not exist", ErrInvalidLocation, loc.Bucket)
	}
	if _, err := client.StatObject(ctx, loc.Bucket, loc.Key, minio.StatObjectOptions{}); err != nil {
		return fmt.Errorf("failed to access %s: %w", loc, err)
	}
	return nil
}

func (o *Opener) storageClient() (storage.Client, error) {
	if o.client != nil {
		return o.client, nil
	}
	if o.factory == nil {
		return nil, fmt.Errorf("%w: object storage is not configured", ErrInvalidLocation)
	}
	client, err := o.factory()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	o.client = client
	return client, nil
}
