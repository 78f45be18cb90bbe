package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hillshade/dted/internal/dted"
	"github.com/rs/zerolog/log"
)

// S3Client defines the interface for the S3 operations we need
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Loader fetches tiles from an S3 bucket, optionally under a key
// prefix. Public DTED/SRTM datasets are commonly published this way.
type S3Loader struct {
	client S3Client
	bucket string
	prefix string
}

// NewS3Loader builds a loader from the default AWS config chain.
func NewS3Loader(ctx context.Context, bucket, prefix string) (*S3Loader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return NewS3LoaderWithClient(s3.NewFromConfig(cfg), bucket, prefix), nil
}

// NewS3LoaderWithClient builds a loader around an existing client; tests
// pass a stub here.
func NewS3LoaderWithClient(client S3Client, bucket, prefix string) *S3Loader {
	return &S3Loader{client: client, bucket: bucket, prefix: prefix}
}

func (l *S3Loader) Load(ctx context.Context, name string) (*dted.Tile, error) {
	if l.bucket == "" {
		return nil, fmt.Errorf("empty bucket name")
	}

	key := path.Join(l.prefix, name)
	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("tile %s: %w", name, os.ErrNotExist)
		}
		return nil, fmt.Errorf("fetching tile %s from s3: %w", name, err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			log.Error().Err(err).Str("tile", name).Msg("Error closing S3 object body")
		}
	}(result.Body)

	return dted.Decode(result.Body)
}
