//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"bargain-market/cmd/bootstrap"
	"bargain-market/cmd/bootstrap/components"
	"bargain-market/internal/infra/db"
	"bargain-market/internal/infra/notify"
	"bargain-market/internal/pkg/config"
	"bargain-market/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	testUser     = "test"
	testPassword = "testpass"
)

// sharedContainer is started at most once per test process.
type sharedContainer struct {
	name    string
	port    nat.Port
	timeout time.Duration
	request func() testcontainers.ContainerRequest

	once sync.Once
	c    testcontainers.Container
	err  error
}

var (
	postgresContainer = &sharedContainer{
		name:    "PostgreSQL",
		port:    "5432/tcp",
		timeout: 3 * time.Minute,
		request: postgresRequest,
	}
	redisContainer = &sharedContainer{
		name:    "Redis",
		port:    "6379/tcp",
		timeout: 2 * time.Minute,
		request: redisRequest,
	}
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) Addr() string {
	return c.Host + ":" + c.Port.Port()
}

func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *redis.Client, *gin.Engine, config.Config) {
	postgresInfo, redisInfo := startContainers(t)

	pool, dbConfig := prepareDatabase(t, postgresInfo)

	cfg := createTestConfig(dbConfig, redisInfo)
	router, app := buildE2EApp(pool, cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	rdb := notify.NewRedisClient(cfg.Redis)
	t.Cleanup(func() { _ = rdb.Close() })

	slog.Info("E2E environment ready",
		"postgres_host", postgresInfo.Host,
		"postgres_port", postgresInfo.Port.Port(),
		"redis_addr", redisInfo.Addr())

	return pool, rdb, router, cfg
}

func startContainers(t *testing.T) (ContainerInfo, ContainerInfo) {
	gin.SetMode(gin.TestMode)
	return postgresContainer.start(t), redisContainer.start(t)
}

func (sc *sharedContainer) start(t *testing.T) ContainerInfo {
	t.Helper()

	sc.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), sc.timeout)
		defer cancel()
		sc.c, sc.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: sc.request(),
			Started:          true,
		})
	})
	require.NoError(t, sc.err, "failed to start %s container", sc.name)

	ctx := context.Background()
	host, err := sc.c.Host(ctx)
	require.NoError(t, err, "failed to resolve %s host", sc.name)
	port, err := sc.c.MappedPort(ctx, sc.port)
	require.NoError(t, err, "failed to resolve %s port", sc.name)
	return ContainerInfo{Host: host, Port: port}
}

// Containers outlive any one suite; the testcontainers reaper removes them.

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       "postgres",
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return adminDSN(ContainerInfo{Host: host, Port: port})
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "bargain-market-e2e"},
	}
}

func redisRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		Labels:       map[string]string{"purpose": "bargain-market-e2e"},
	}
}

func adminDSN(pg ContainerInfo) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", testUser, testPassword, pg.Addr())
}

func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	// one database per test process
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	dsn := adminDSN(postgresInfo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, dsn)
		if err != nil {
			slog.Warn("cleanup connection failed", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "Asia/Kathmandu",
		MaxConns: 20,
	}

	pool, closePool, err := db.Connect(dbConfig)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)

	require.NoError(t, applyMigrations(t, pool), "migration failed")

	return pool, dbConfig
}

// applyMigrations runs every migrations/*.sql file in name order. The
// directory is located relative to this source file, not the test's cwd.
func applyMigrations(t *testing.T, pool *pgxpool.Pool) error {
	t.Helper()

	_, self, _, ok := runtime.Caller(0)
	if !ok {
		return fmt.Errorf("cannot locate e2e setup source")
	}
	files, err := filepath.Glob(filepath.Join(filepath.Dir(self), "..", "..", "migrations", "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found")
	}
	sort.Strings(files)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for _, file := range files {
		ddl, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", filepath.Base(file), err)
		}
		if _, err := pool.Exec(ctx, string(ddl)); err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

func buildE2EApp(pool *pgxpool.Pool, cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	app := fx.New(
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.NotifyModule,
		components.PersistenceModule,
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

	return router, app
}

func createTestConfig(dbConfig config.DBConfig, redisInfo ContainerInfo) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig
	testConfig.Redis.Addr = redisInfo.Addr()
	testConfig.Redis.DialTimeout = 2 * time.Second
	// unique prefix keeps parallel test processes out of each other's inboxes
	testConfig.Redis.KeyPrefix = "bm-e2e-" + uuid.NewString()[:8]
	return testConfig
}

type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	pool, rdb, router, cfg := setupE2EEnvironment(t)
	s.DB = pool
	s.Redis = rdb
	s.Router = router
	s.Config = cfg
	require.NotNil(t, s.DB)
	require.NotNil(t, s.Router)
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
}

// InboxKey mirrors the dispatcher's per-recipient list key.
func (s *SharedSuite) InboxKey(recipientID uuid.UUID) string {
	return notify.NewRedisDispatcher(s.Redis, s.Config.Redis).InboxKey(recipientID.String())
}
