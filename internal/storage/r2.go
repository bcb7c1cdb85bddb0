package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Config holds the S3-compatible endpoint credentials. Prefix lets
// several restaurants share one bucket.
type R2Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	BaseURL   string
	Prefix    string
}

// R2Client implements Sink against a Cloudflare R2 (or any
// S3-compatible) bucket. Each Put retries transient failures before
// surfacing them in the push report.
type R2Client struct {
	client  *s3.Client
	bucket  string
	baseURL string
	prefix  string
}

func NewR2Client(ctx context.Context, cfg R2Config) (*R2Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
		awsconfig.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(
				func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					if service == s3.ServiceID {
						return aws.Endpoint{
							URL:           cfg.Endpoint,
							SigningRegion: "auto",
						}, nil
					}
					return aws.Endpoint{}, &aws.EndpointNotFoundError{}
				},
			),
		),
	)
	if err != nil {
		return nil, err
	}

	return &R2Client{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.Bucket,
		baseURL: cfg.BaseURL,
		prefix:  cfg.Prefix,
	}, nil
}

func (r *R2Client) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	key := name
	if r.prefix != "" {
		key = fmt.Sprintf("%s/%s", r.prefix, name)
	}

	err := retry.Do(
		func() error {
			_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
				Bucket:      &r.bucket,
				Key:         &key,
				Body:        bytes.NewReader(data),
				ContentType: &contentType,
			})
			return err
		},
		retry.Attempts(3),
		retry.Context(ctx),
	)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", r.baseURL, key), nil
}
