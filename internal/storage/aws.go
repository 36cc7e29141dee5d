package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ignite/campaign-dashboard/internal/config"
	"github.com/ignite/campaign-dashboard/internal/export"
)

// objectPutter is the subset of the S3 client used for uploads
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads reports to an S3 bucket
type S3Sink struct {
	client objectPutter
	bucket string
	prefix string
}

// NewS3Sink creates an S3 sink using the default AWS credential chain
func NewS3Sink(ctx context.Context, cfg config.StorageConfig) (*S3Sink, error) {
	var awsCfg aws.Config
	var err error

	if cfg.AWSProfile != "" {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.S3Region),
			awsconfig.WithSharedConfigProfile(cfg.AWSProfile),
		)
	} else {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.S3Region),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &S3Sink{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
		prefix: cfg.S3Prefix,
	}, nil
}

// Save uploads the report and returns its s3:// URI.
func (s *S3Sink) Save(ctx context.Context, report *export.Report) (string, error) {
	if report.Filename == "" {
		return "", ErrEmptyName
	}

	key := path.Join(s.prefix, path.Base(report.Filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(report.Data),
		ContentType: aws.String(report.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("putting object to S3 bucket %s: %w", s.bucket, err)
	}

	return "s3://" + s.bucket + "/" + key, nil
}
