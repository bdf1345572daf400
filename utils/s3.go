package utils

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3Putter is the part of *s3.Client the photo store needs.
type s3Putter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3PhotoStore archives analyzed meal photos in a bucket.
type S3PhotoStore struct {
	client    s3Putter
	bucket    string
	publicURL string
}

// NewS3PhotoStore loads the default AWS credential chain for region.
// publicURL is the CDN or bucket base the returned links point at; when
// empty the virtual-hosted bucket URL is used.
func NewS3PhotoStore(ctx context.Context, region, bucket, publicURL string) (*S3PhotoStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}
	return newS3PhotoStore(s3.NewFromConfig(cfg), bucket, publicURL), nil
}

func newS3PhotoStore(client s3Putter, bucket, publicURL string) *S3PhotoStore {
	return &S3PhotoStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload stores data under key and returns its public URL.
func (s *S3PhotoStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return fmt.Sprintf("%s/%s", s.publicURL, key), nil
}

// PhotoKey builds a unique object key for a user's meal photo.
func PhotoKey(prefix, contentType string, now time.Time) string {
	return fmt.Sprintf("meal-photos/%s-%d%s", prefix, now.UnixNano(), extensionFor(contentType))
}

func extensionFor(contentType string) string {
	contentType = strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	// fallback: use subtype
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 && parts[1] != "" {
		return "." + parts[1]
	}
	return ""
}
