package feed

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/cespare/ropesim/config"
	"github.com/cespare/ropesim/rope"
)

// Open returns the instruction text at location: "-" (or "") is stdin,
// s3://bucket/key is an S3 object, and anything else is a local file.
func Open(ctx context.Context, location string, cfg *config.Config) (io.ReadCloser, error) {
	switch {
	case location == "" || location == "-":
		return io.NopCloser(os.Stdin), nil
	case strings.HasPrefix(location, "s3://"):
		bucket, key, err := parseS3URL(location)
		if err != nil {
			return nil, err
		}
		client, err := newS3Client(cfg)
		if err != nil {
			return nil, err
		}
		return openS3(ctx, client, bucket, key)
	}
	return os.Open(location)
}

// ReadLocation opens location and parses every instruction in it.
func ReadLocation(ctx context.Context, location string, cfg *config.Config) ([]rope.Instruction, error) {
	rc, err := Open(ctx, location, cfg)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	name := location
	if name == "" || name == "-" {
		name = "stdin"
	}
	return ReadAll(rc, name)
}

func parseS3URL(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("bad S3 location %q: %s", location, err)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("bad S3 location %q: need s3://bucket/key", location)
	}
	return bucket, key, nil
}

func newS3Client(cfg *config.Config) (*s3.S3, error) {
	if cfg.AWS.CredentialsFile == "" {
		return nil, fmt.Errorf("no AWS credentials file configured")
	}
	// NewSharedCredentials doesn't report a missing file until first use.
	if _, err := os.Stat(cfg.AWS.CredentialsFile); err != nil {
		return nil, fmt.Errorf("error statting credentials file (%s): %s", cfg.AWS.CredentialsFile, err)
	}
	region, err := cfg.SharedRegion()
	if err != nil {
		return nil, err
	}
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewSharedCredentials(cfg.AWS.CredentialsFile, cfg.AWS.Profile),
		Region:      aws.String(region),
	})
	if err != nil {
		return nil, err
	}
	return s3.New(sess), nil
}

func openS3(ctx context.Context, client s3iface.S3API, bucket, key string) (io.ReadCloser, error) {
	resp, err := client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching s3://%s/%s: %s", bucket, key, err)
	}
	return resp.Body, nil
}
