package bootstrap

import (
	"context"

	"locadora-api/internal/infra/blobstore"
	"locadora-api/internal/infra/tablestore"
	"locadora-api/internal/pkg/config"
	"locadora-api/internal/usecase/commands"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/fx"
)

var AWSModule = fx.Module("aws",
	fx.Provide(
		NewAWSConfig,
		NewDynamoDBClient,
		NewS3Client,
		NewTableStore,
		fx.Annotate(
			NewBlobStore,
			fx.As(new(commands.BlobStore)),
		),
	),
)

func NewAWSConfig(cfg config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWS.Region),
	}
	// Static credentials are only set explicitly for local stacks
	// (dynamodb-local, MinIO); real deployments use the default chain.
	if cfg.AWS.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKey, cfg.AWS.SecretKey, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(context.Background(), opts...)
}

func NewDynamoDBClient(cfg config.Config, awsCfg aws.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	})
}

func NewS3Client(cfg config.Config, awsCfg aws.Config) *s3.Client {
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
			o.UsePathStyle = true
		}
	})
}

// NewTableStore provisions the table on startup so a fresh local stack
// works without migration tooling.
func NewTableStore(lc fx.Lifecycle, cfg config.Config, client *dynamodb.Client) tablestore.Store {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return tablestore.EnsureTable(ctx, client, cfg.Store.Table)
		},
	})
	return tablestore.NewDynamoStore(client, cfg.Store.Table)
}

func NewBlobStore(cfg config.Config, client *s3.Client) blobstore.Store {
	return blobstore.NewS3Store(client, cfg)
}
