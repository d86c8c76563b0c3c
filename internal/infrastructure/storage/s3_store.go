package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/Vitalis058/tumaini-next-sub000/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// ObjectStore is the external binary store behind tour images.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) error
	// DeleteByPrefix removes every object whose key starts with prefix and
	// reports how many were removed.
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
}

// S3Store implements ObjectStore on Amazon S3 or an S3-compatible endpoint.
type S3Store struct {
	Client   s3iface.S3API
	Uploader *s3manager.Uploader
	Bucket   string
}

// NewS3Store builds a client from the default credential chain
// (AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY, shared config, instance role).
func NewS3Store(cfg *config.Config) (*S3Store, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is not set")
	}

	awsCfg := &aws.Config{Region: aws.String(cfg.S3Region)}
	if cfg.S3Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.S3Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	client := s3.New(sess)
	return &S3Store{
		Client:   client,
		Uploader: s3manager.NewUploaderWithClient(client),
		Bucket:   cfg.S3Bucket,
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.Uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:       aws.String(s.Bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return fmt.Errorf("s3 upload %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	var objects []*s3.ObjectIdentifier
	err := s.Client.ListObjectsV2PagesWithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.Bucket),
		Prefix: aws.String(prefix),
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			objects = append(objects, &s3.ObjectIdentifier{Key: obj.Key})
		}
		return true
	})
	if err != nil {
		return 0, fmt.Errorf("s3 list %s: %w", prefix, err)
	}
	if len(objects) == 0 {
		return 0, nil
	}

	out, err := s.Client.DeleteObjectsWithContext(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.Bucket),
		Delete: &s3.Delete{Objects: objects, Quiet: aws.Bool(true)},
	})
	if err != nil {
		return 0, fmt.Errorf("s3 delete %s: %w", prefix, err)
	}
	if len(out.Errors) > 0 {
		first := out.Errors[0]
		return len(objects) - len(out.Errors), fmt.Errorf("s3 delete %s: %s: %s",
			aws.StringValue(first.Key), aws.StringValue(first.Code), aws.StringValue(first.Message))
	}
	return len(objects), nil
}
