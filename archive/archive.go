package archive

import (
	"strings"

	"github.com/pkg/errors"
)

// Backend places product files into an archive laid out by relative
// directory paths.
type Backend interface {
	// Put copies the file at localPath into the archive under relativeDir,
	// a slash-separated directory path, with the given file name.
	Put(localPath, relativeDir, name string) error
}

const s3Scheme = "s3://"

// NewBackend selects a backend from an archive target string. Targets of
// the form s3://bucket[/prefix] select the S3-compatible object store
// backend; every other target is taken as a local archive root directory.
func NewBackend(target string) (Backend, error) {
	if target == "" {
		return nil, errors.New("no archive target given")
	}
	if strings.HasPrefix(target, s3Scheme) {
		bucket, prefix := splitS3Target(target)
		if bucket == "" {
			return nil, errors.Errorf("invalid S3 archive target: %v", target)
		}
		return newS3Backend(bucket, prefix)
	}
	return newLocalBackend(target), nil
}

func splitS3Target(target string) (bucket, prefix string) {
	trimmed := strings.TrimPrefix(target, s3Scheme)
	parts := strings.SplitN(trimmed, "/", 2)
	bucket = parts[0]
	if len(parts) == 2 {
		prefix = strings.Trim(parts[1], "/")
	}
	return bucket, prefix
}
