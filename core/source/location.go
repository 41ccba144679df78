package source

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// ErrInvalidLocation is returned for input locations that cannot be parsed.
var ErrInvalidLocation = errors.New("invalid location")

const s3Scheme = "s3://"

// Location is an input list: a local path, or an object in a bucket.
type Location struct {
	// Path is the local filesystem path. Empty for remote locations.
	Path string
	// Bucket is the object storage bucket. Empty for local locations.
	Bucket string
	// Key is the object key inside Bucket.
	Key string
}

// Parse parses a command line location. "s3://bucket/key" addresses object
// storage; anything else is a local path.
func Parse(raw string) (Location, error) {
	if raw == "" {
		return Location{}, fmt.Errorf("%w: empty path", ErrInvalidLocation)
	}
	if !strings.HasPrefix(raw, s3Scheme) {
		return Location{Path: raw}, nil
	}

	rest := strings.TrimPrefix(raw, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return Location{}, fmt.Errorf("%w: %q is not s3://bucket/key", ErrInvalidLocation, raw)
	}
	return Location{Bucket: bucket, Key: key}, nil
}

// IsRemote reports whether the location is in object storage.
func (l Location) IsRemote() bool {
	return l.Bucket != ""
}

// String returns the location in the form Parse accepts.
func (l Location) String() string {
	if l.IsRemote() {
		return s3Scheme + l.Bucket + "/" + l.Key
	}
	return l.Path
}

// OutputPath derives the report path from the registration list location:
// its name without extension plus suffix. Reports for remote lists are
// written to the working directory.
func OutputPath(reg Location, suffix string) string {
	if reg.IsRemote() {
		base := path.Base(reg.Key)
		return strings.TrimSuffix(base, path.Ext(base)) + suffix
	}
	return strings.TrimSuffix(reg.Path, filepath.Ext(reg.Path)) + suffix
}
