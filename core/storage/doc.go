// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that registration and attendee lists can be
// read straight from an S3 compatible bucket (s3://bucket/key) instead of the
// local filesystem. Only read operations are exposed: the attendance report is
// always written to a single local file.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the source bucket.
//   - StatObject: Verifies the object exists before it is read.
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	rc, err := client.GetObject(ctx, "events", "webinar/registrants.csv", minio.GetObjectOptions{})
package storage
