package assets

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/tripdesk/internal/config"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		_, err := c.PutObject(ctx, in)
		return err
	}
)

const keyPrefix = "images"

// S3Picker uploads the file to a bucket and returns "s3://bucket/key". Files
// above the configured size limit are refused before any upload.
type S3Picker struct {
	bucket    string
	region    string
	endpoint  string
	accessKey string
	secretKey string
	timeout   time.Duration
	maxBytes  int64
}

func NewS3Picker(cfg *config.Config) *S3Picker {
	return &S3Picker{
		bucket:    cfg.S3Bucket,
		region:    cfg.S3Region,
		endpoint:  cfg.S3BaseEndpoint,
		accessKey: cfg.S3AccessKey,
		secretKey: cfg.S3SecretKey,
		timeout:   cfg.UploadTimeout,
		maxBytes:  cfg.MaxImageBytes,
	}
}

func (p *S3Picker) client(ctx context.Context) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(p.region)}
	if p.accessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(p.accessKey, p.secretKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if p.endpoint != "" {
			o.BaseEndpoint = aws.String(p.endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// StorageKey returns a fresh object key keeping the file's extension.
func StorageKey(path string) string {
	return fmt.Sprintf("%s/%s%s", keyPrefix, uuid.NewString(), strings.ToLower(filepath.Ext(path)))
}

func (p *S3Picker) Pick(ctx context.Context, path string) (string, error) {
	path = strings.TrimSpace(path)
	data, err := readFile(path, p.maxBytes)
	if err != nil {
		return "", err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	c, err := p.client(ctx)
	if err != nil {
		return "", fmt.Errorf("s3 config: %w", err)
	}

	key := StorageKey(path)
	err = putObject(c, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(http.DetectContentType(data)),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}

	return "s3://" + p.bucket + "/" + key, nil
}
