package assets

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/tripdesk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubS3(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	origPut := putObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
		putObject = origPut
	})
}

func newTestS3Picker() *S3Picker {
	return NewS3Picker(&config.Config{
		S3Bucket:       "tripdesk",
		S3Region:       "us-east-1",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3AccessKey:    "minioadmin",
		S3SecretKey:    "minioadmin",
		UploadTimeout:  5 * time.Second,
	})
}

func TestS3Picker_Uploads(t *testing.T) {
	stubS3(t)
	path := writeTemp(t, "Cover.PNG", pngHeader)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		require.NotNil(t, lo.Credentials)
		creds, err := lo.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "minioadmin", creds.AccessKeyID)
		return aws.Config{}, nil
	}

	var endpoint string
	var pathStyle bool
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		endpoint = aws.ToString(opts.BaseEndpoint)
		pathStyle = opts.UsePathStyle
		return &s3.Client{}
	}

	var gotBucket, gotKey, gotType string
	var body []byte
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		gotBucket, gotKey, gotType = aws.ToString(in.Bucket), aws.ToString(in.Key), aws.ToString(in.ContentType)
		var err error
		body, err = io.ReadAll(in.Body)
		return err
	}

	h, err := newTestS3Picker().Pick(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:9000", endpoint)
	assert.True(t, pathStyle)
	assert.Equal(t, "tripdesk", gotBucket)
	assert.True(t, strings.HasPrefix(gotKey, "images/"), gotKey)
	assert.True(t, strings.HasSuffix(gotKey, ".png"), gotKey)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, pngHeader, body)
	assert.Equal(t, "s3://tripdesk/"+gotKey, h)
}

func TestS3Picker_Errors(t *testing.T) {
	stubS3(t)
	path := writeTemp(t, "a.jpg", []byte("x"))

	newS3ClientFromConfig = func(aws.Config, ...func(*s3.Options)) *s3.Client { return &s3.Client{} }

	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err := newTestS3Picker().Pick(context.Background(), path)
	require.ErrorContains(t, err, "load-fail")

	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	putObject = func(*s3.Client, context.Context, *s3.PutObjectInput) error { return errors.New("put-fail") }
	_, err = newTestS3Picker().Pick(context.Background(), path)
	require.ErrorContains(t, err, "put-fail")

	_, err = newTestS3Picker().Pick(context.Background(), filepath.Join(t.TempDir(), "none.jpg"))
	require.Error(t, err)
}

func TestS3Picker_TooLargeIsNotUploaded(t *testing.T) {
	stubS3(t)
	path := writeTemp(t, "big.png", make([]byte, 64))

	called := false
	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		called = true
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(aws.Config, ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	putObject = func(*s3.Client, context.Context, *s3.PutObjectInput) error {
		called = true
		return nil
	}

	p := newTestS3Picker()
	p.maxBytes = 10
	_, err := p.Pick(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooLarge))
	assert.False(t, called)

	p.maxBytes = 64
	_, err = p.Pick(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestStorageKey_Unique(t *testing.T) {
	a, b := StorageKey("x.JPG"), StorageKey("x.JPG")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".jpg"))
}
