package archive

import (
	"context"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"github.com/stcorp/muninn-sentinel5p/util"
)

// s3Backend writes products into an S3-compatible object store through the
// minio client. Objects are keyed <prefix>/<relativeDir>/<name>.
type s3Backend struct {
	api    *minio.Client
	bucket string
	prefix string
}

func newS3Backend(bucket, prefix string) (*s3Backend, error) {
	endpoint := util.GetS3Endpoint()
	if endpoint == "" {
		return nil, errors.New("no S3 endpoint configured")
	}

	api, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(util.GetS3AccessKey(), util.GetS3SecretKey(), ""),
		Secure: util.IsS3SSLEnabled(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Could not create the S3 client")
	}

	return &s3Backend{api: api, bucket: bucket, prefix: prefix}, nil
}

func (b *s3Backend) Put(localPath, relativeDir, name string) error {
	key := path.Join(b.prefix, relativeDir, name)
	_, err := b.api.FPutObject(context.Background(), b.bucket, key, localPath, minio.PutObjectOptions{})
	if err != nil {
		return errors.Wrapf(err, "Could not store %v in bucket %v", key, b.bucket)
	}
	return nil
}
