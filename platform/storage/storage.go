// Package storage opens the bucket the uploaded note files are written to.
//
// Hosted providers are reached through their S3 compatible API using the
// account id, api key and api secret. For local runs and tests a gocloud
// bucket url (mem://, file:///tmp/notes) can be used instead.
package storage

import (
	"context"
	"errors"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gocloud.dev/blob"
	"gocloud.dev/blob/s3blob"

	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// endpointFormat is the S3 compatible endpoint of an account when none is configured
const endpointFormat = "https://%s.r2.cloudflarestorage.com"

var ErrMissingCredentials = errors.New("storage: account id, api key and api secret are required")

// Config is the subset of the process configs needed to reach the provider
type Config struct {
	AccountID string
	APIKey    string
	APISecret string
	Bucket    string
	Region    string
	Endpoint  string
	BucketURL string
}

// swapped in tests
var (
	loadDefaultConfig = config.LoadDefaultConfig
	openBucketV2      = s3blob.OpenBucketV2
)

// Open returns the bucket described by cfg. BucketURL wins over the provider credentials.
func Open(ctx context.Context, cfg Config) (*blob.Bucket, error) {
	if cfg.BucketURL != "" {
		b, err := blob.OpenBucket(ctx, cfg.BucketURL)
		if err != nil {
			return nil, fmt.Errorf("open bucket url %q: %w", cfg.BucketURL, err)
		}
		return b, nil
	}

	if cfg.AccountID == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, ErrMissingCredentials
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf(endpointFormat, cfg.AccountID)
	}

	awsCfg, err := loadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.APIKey, cfg.APISecret, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load provider config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	b, err := openBucketV2(ctx, client, cfg.Bucket, nil)
	if err != nil {
		return nil, fmt.Errorf("open bucket %q: %w", cfg.Bucket, err)
	}
	return b, nil
}
