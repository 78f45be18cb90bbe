package source

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hillshade/dted/internal/dted/dtedtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockS3Client struct {
	getObjectFunc func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

func (m *mockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return m.getObjectFunc(ctx, params, optFns...)
}

func TestS3LoaderLoad(t *testing.T) {
	const name = "E0104500N471500_SRTM_1_DEM.dt2"
	tileBytes := dtedtest.New(dtedtest.Uniform(2, 2, 88)).Bytes()

	var gotBucket, gotKey string
	client := &mockS3Client{
		getObjectFunc: func(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			gotBucket = *params.Bucket
			gotKey = *params.Key
			return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(tileBytes))}, nil
		},
	}

	loader := NewS3LoaderWithClient(client, "elevation-tiles", "dted/level2")

	tile, err := loader.Load(context.Background(), name)
	require.NoError(t, err)
	assert.Equal(t, "elevation-tiles", gotBucket)
	assert.Equal(t, "dted/level2/"+name, gotKey)

	elevation, err := tile.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(88), elevation.Meters)
}

func TestS3LoaderMissingTile(t *testing.T) {
	client := &mockS3Client{
		getObjectFunc: func(_ context.Context, _ *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			return nil, &types.NoSuchKey{}
		},
	}

	loader := NewS3LoaderWithClient(client, "elevation-tiles", "")

	_, err := loader.Load(context.Background(), "E0104500N471500_SRTM_1_DEM.dt2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestS3LoaderEmptyBucket(t *testing.T) {
	loader := NewS3LoaderWithClient(&mockS3Client{}, "", "")

	_, err := loader.Load(context.Background(), "E0104500N471500_SRTM_1_DEM.dt2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty bucket name")
}
