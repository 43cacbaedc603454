//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"locadora-api/cmd/bootstrap"
	"locadora-api/cmd/bootstrap/components"
	"locadora-api/internal/handler/middleware"
	"locadora-api/internal/infra/blobstore"
	"locadora-api/internal/pkg/config"
	"locadora-api/internal/usecase/commands"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const blobBaseURL = "http://blobs.e2e.local"

var (
	dynamoContainerOnce sync.Once
	dynamoTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// Each test process gets its own table inside a shared dynamodb-local
// container; provisioning happens through the app's own startup hook.
func setupE2EEnvironment(t *testing.T) (*gin.Engine, *blobstore.MemoryStore, config.Config) {
	dynamoInfo := startContainers(t)

	cfg := createTestConfig(dynamoInfo)
	router, blobs, app := buildE2EApp(cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	return router, blobs, cfg
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startDynamoContainerOnce(t)

	dynamoInfo, err := getContainerHostPort(dynamoTestContainer, "8000/tcp")
	require.NoError(t, err, "failed to read dynamodb-local container info")

	return dynamoInfo
}

func createTestConfig(dynamoInfo ContainerInfo) config.Config {
	cfg := config.NewTestConfig()
	cfg.AWS.Endpoint = fmt.Sprintf("http://%s:%s", dynamoInfo.Host, dynamoInfo.Port.Port())
	// A fresh table per process keeps parallel test runs isolated.
	cfg.Store.Table = "locadora_e2e_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	cfg.Blob.PublicBaseURL = blobBaseURL
	return cfg
}

// buildE2EApp composes the application the same way cmd/main.go does, with
// two swaps: a fixed config and an in-memory blob store.
func buildE2EApp(cfg config.Config) (*gin.Engine, *blobstore.MemoryStore, *fx.App) {
	var router *gin.Engine
	blobs := blobstore.NewMemoryStore(blobBaseURL)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	testStoreModule := fx.Module("teststore",
		fx.Provide(
			bootstrap.NewAWSConfig,
			bootstrap.NewDynamoDBClient,
			bootstrap.NewTableStore,
			fx.Annotate(
				func() blobstore.Store { return blobs },
				fx.As(new(commands.BlobStore)),
			),
		),
	)

	app := fx.New(
		testConfigModule,
		testStoreModule,
		fx.Provide(
			func(cfg config.Config) *slog.Logger {
				return middleware.NewLogger(cfg.Log).GetSlogLogger()
			},
			func() *gin.Engine { return gin.New() },
		),
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx application started without a router")
	}

	return router, blobs, app
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startDynamoContainerOnce(t *testing.T) {
	dynamoContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "amazon/dynamodb-local:2.5.2",
			ExposedPorts: []string{"8000/tcp"},
			Cmd:          []string{"-jar", "DynamoDBLocal.jar", "-inMemory", "-sharedDb"},
			WaitingFor:   wait.ForListeningPort("8000/tcp").WithStartupTimeout(60 * time.Second),
			Name:         "dynamodb-local-e2e",
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		dynamoTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start dynamodb-local container")

		t.Cleanup(func() {
			if dynamoTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := dynamoTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate dynamodb-local container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// SharedSuite wires one application per suite; scenarios run against it
// through plain HTTP.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Blobs  *blobstore.MemoryStore
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	router, blobs, cfg := setupE2EEnvironment(s.T())
	s.Router = router
	s.Blobs = blobs
	s.Config = cfg
	require.NotNil(s.T(), s.Router, "router setup failed")
}
