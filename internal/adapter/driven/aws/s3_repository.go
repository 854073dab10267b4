package aws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/diillson/mawsh-go/internal/domain/entity"
	"github.com/diillson/mawsh-go/internal/domain/repository"
	"github.com/diillson/mawsh-go/internal/shared/types"
)

// GetObjectAPI is the subset of the S3 client used by S3ProfileRepository.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3ProfileRepository downloads the profile mapping from an S3 object.
type S3ProfileRepository struct {
	bucket  string
	key     string
	region  string
	profile string
	timeout time.Duration

	client GetObjectAPI
	mu     sync.Mutex
}

// S3Option customizes an S3ProfileRepository.
type S3Option func(*S3ProfileRepository)

// WithClient sets the S3 client instead of building one from the shared AWS config.
func WithClient(c GetObjectAPI) S3Option {
	return func(r *S3ProfileRepository) {
		r.client = c
	}
}

// NewS3ProfileRepository cria uma nova implementação do ProfileRepository baseada no S3.
func NewS3ProfileRepository(cfg types.Config, opts ...S3Option) repository.ProfileRepository {
	r := &S3ProfileRepository{
		bucket:  cfg.S3Bucket,
		key:     cfg.S3Key,
		region:  cfg.S3Region,
		profile: cfg.AWSProfile,
		timeout: time.Duration(cfg.Timeout) * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// URI returns the s3:// location of the mapping object.
func (r *S3ProfileRepository) URI() string {
	return fmt.Sprintf("s3://%s/%s", r.bucket, r.key)
}

func (r *S3ProfileRepository) getClient(ctx context.Context) (GetObjectAPI, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return r.client, nil
	}

	var optFns []func(*config.LoadOptions) error
	if r.profile != "" {
		optFns = append(optFns, config.WithSharedConfigProfile(r.profile))
	}
	if r.region != "" {
		optFns = append(optFns, config.WithRegion(r.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", r.profile, err)
	}

	r.client = s3.NewFromConfig(cfg)
	return r.client, nil
}

// FetchProfiles issues one GetObject for the mapping. API errors that carry an
// HTTP response become a non-OK FetchResult.
func (r *S3ProfileRepository) FetchProfiles(ctx context.Context) (*entity.FetchResult, error) {
	client, err := r.getClient(ctx)
	if err != nil {
		return nil, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	uri := r.URI()
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
	})
	if err != nil {
		var re *awshttp.ResponseError
		if errors.As(err, &re) {
			return &entity.FetchResult{
				Source:     uri,
				StatusCode: re.HTTPStatusCode(),
				Body:       []byte(re.Error()),
			}, nil
		}
		return nil, fmt.Errorf("failed to download %s: %w", uri, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", uri, err)
	}

	return &entity.FetchResult{
		Source:     uri,
		StatusCode: http.StatusOK,
		Body:       body,
	}, nil
}
