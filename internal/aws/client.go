package aws

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/cockroachdb/errors"
	"github.com/jdlms/aws-costs/internal/cache"
	"go.uber.org/zap"
)

// DefaultRegion is where the Cost Explorer endpoint lives
const DefaultRegion = "us-east-1"

// requestTimeout bounds every Cost Explorer call
const requestTimeout = 30 * time.Second

// CostAndUsageAPI is the slice of the Cost Explorer client this package calls
type CostAndUsageAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

// Client fetches monthly cost summaries grouped by service
type Client struct {
	api   CostAndUsageAPI
	cache *cache.SummaryCache
	log   *zap.SugaredLogger
	now   func() time.Time
}

// Options selects the credentials the client signs requests with
type Options struct {
	Profile string
	Region  string
}

// NewClient creates a Cost Explorer client from the shared AWS config and environment
func NewClient(ctx context.Context, opts Options, log *zap.SugaredLogger) (*Client, error) {
	cfg, err := loadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}
	log.Infow("loaded AWS config", "profile", opts.Profile, "region", cfg.Region)

	return New(costexplorer.NewFromConfig(cfg), log), nil
}

// loadConfig resolves credentials and region. A profile is pinned only when
// one was named, so environment credentials work without ~/.aws.
func loadConfig(ctx context.Context, opts Options) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, errors.Wrapf(err, "load AWS config for profile %q", opts.Profile)
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	return cfg, nil
}

// New wraps an existing Cost Explorer API
func New(api CostAndUsageAPI, log *zap.SugaredLogger) *Client {
	return &Client{
		api:   api,
		cache: cache.New(cache.ExpiryDefault),
		log:   log,
		now:   time.Now,
	}
}
