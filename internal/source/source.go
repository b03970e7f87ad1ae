package source

import (
	"context"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/vango-dev/elattr/internal/config"
	"github.com/vango-dev/elattr/internal/descriptor"
	"github.com/vango-dev/elattr/internal/errors"
)

const (
	// S3Scheme prefixes locations read from S3.
	S3Scheme = "s3://"

	// DefaultRegion is used when no region is configured anywhere.
	DefaultRegion = "us-east-1"
)

// ObjectGetter is the part of *s3.Client the loader uses.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Option configures a Loader.
type Option func(*Loader)

// WithS3Client sets the client used for s3:// locations.
func WithS3Client(client ObjectGetter) Option {
	return func(l *Loader) {
		l.client = client
	}
}

// WithS3Config builds the S3 client from cfg on first use.
func WithS3Config(cfg config.S3Config) Option {
	return func(l *Loader) {
		l.s3Config = cfg
	}
}

// WithMaxBytes limits the size of objects read from S3.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) {
		l.maxBytes = n
	}
}

// Loader reads descriptors and builds their elements.
type Loader struct {
	s3Config config.S3Config
	maxBytes int64

	once      sync.Once
	client    ObjectGetter
	clientErr error
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{maxBytes: config.DefaultMaxBodyBytes}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the descriptor at location and builds its element.
func (l *Loader) Load(ctx context.Context, location string) (descriptor.Element, error) {
	if !strings.HasPrefix(location, S3Scheme) {
		return descriptor.ReadFile(location)
	}

	bucket, key, err := ParseS3URI(location)
	if err != nil {
		return nil, err
	}
	data, err := l.readObject(ctx, bucket, key)
	if err != nil {
		return nil, errors.FromError(err, "E214").WithFile(location)
	}
	return descriptor.Parse(location, data)
}

func (l *Loader) readObject(ctx context.Context, bucket, key string) ([]byte, error) {
	l.once.Do(func() {
		if l.client == nil {
			l.client, l.clientErr = NewS3Client(ctx, l.s3Config)
		}
	})
	if l.clientErr != nil {
		return nil, l.clientErr
	}

	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.New("E214").Wrap(err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, l.maxBytes+1))
	if err != nil {
		return nil, errors.New("E214").Wrap(err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, errors.New("E214").WithDetailf("object is larger than %d bytes", l.maxBytes)
	}
	return data, nil
}

// ParseS3URI splits s3://bucket/key into its bucket and key.
func ParseS3URI(location string) (bucket, key string, err error) {
	u, perr := url.Parse(location)
	if perr != nil || u.Scheme != "s3" {
		return "", "", errors.New("E214").WithFile(location).WithDetail("expected s3://bucket/key")
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", errors.New("E214").WithFile(location).WithDetail("expected s3://bucket/key")
	}
	return bucket, key, nil
}

// NewS3Client creates an S3 client from cfg. Credentials and region are
// resolved by the SDK's default chain (environment, shared config and
// credentials files, SSO, web identity, instance metadata). With
// cfg.Anonymous set requests are unsigned.
func NewS3Client(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Anonymous {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(aws.AnonymousCredentials{}))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.New("E214").WithDetail("loading AWS configuration").Wrap(err)
	}
	if awsCfg.Region == "" {
		awsCfg.Region = DefaultRegion
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}
