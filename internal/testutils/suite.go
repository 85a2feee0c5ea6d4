package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"onboarding-backend/internal/config"
	"onboarding-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "onboarding"
	pgPassword = "onboarding"
	pgDatabase = "onboarding_test"
)

// Shared, process-wide Postgres
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
	sharedTables   []string
)

// BaseTestSuite gives integration suites a migrated database and a matching config
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use.
// Call this in integration tests before using the DB.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// CleanupSharedContainer tears down Docker resources when the whole test run ends.
// TestMain in the repository package calls it.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool != nil && sharedResource != nil {
		log.Printf("Purging Postgres container %s", sharedResource.Container.Name)
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge shared resource: %v", err)
		}
		sharedResource = nil
		sharedPool = nil
	}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties the tables; the container is reused by the next suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every service table in one statement
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(sharedTables) == 0 {
		return
	}
	s.DB.Exec(`TRUNCATE TABLE ` + strings.Join(sharedTables, ", ") + ` RESTART IDENTITY CASCADE`)
}

// tableNames resolves the table of every registered model
func tableNames(db *gorm.DB) ([]string, error) {
	var names []string
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, err
		}
		names = append(names, `"`+stmt.Schema.Table+`"`)
	}
	return names, nil
}

// startContainer runs image:tag with auto-remove and waits until ready succeeds
// against the mapped host address of port.
func startContainer(pool *dockertest.Pool, opts *dockertest.RunOptions, port string, wait time.Duration, ready func(addr string) error) (*dockertest.Resource, string, error) {
	resource, err := pool.RunWithOptions(opts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, "", fmt.Errorf("could not start %s: %w", opts.Repository, err)
	}

	addr := net.JoinHostPort("127.0.0.1", resource.GetPort(port))
	pool.MaxWait = wait
	if err := pool.Retry(func() error { return ready(addr) }); err != nil {
		_ = pool.Purge(resource)
		return nil, "", fmt.Errorf("%s not ready: %w", opts.Repository, err)
	}
	return resource, addr, nil
}

func initSharedPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}

	resource, addr, err := startContainer(pool, &dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, "5432/tcp", 2*time.Minute, func(addr string) error {
		std, err := sql.Open("pgx", postgresDSN(addr))
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	})
	if err != nil {
		return err
	}
	sharedPool = pool
	sharedResource = resource

	dsn := postgresDSN(addr)
	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	if sharedTables, err = tableNames(db); err != nil {
		return fmt.Errorf("could not resolve tables: %w", err)
	}
	sharedDB = db

	sharedConfig = &config.Config{
		DatabaseURL: dsn,
		Port:        "8080",
		LogLevel:    "debug",
		Environment: "test",
		PlanSource:  config.PlanSourceTemplate,
		Timezone:    "UTC",
		MaxUploadMB: 20,
	}

	log.Printf("Shared Postgres ready on %s with tables %v", addr, sharedTables)
	return nil
}

func postgresDSN(addr string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", pgUser, pgPassword, addr, pgDatabase)
}

// SetupRedis starts a throwaway Redis container for one test and returns its
// address. The container is purged when the test finishes.
func SetupRedis(t *testing.T) string {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	resource, addr, err := startContainer(pool, &dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, "6379/tcp", time.Minute, func(addr string) error {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		defer rdb.Close()
		return rdb.Ping(context.Background()).Err()
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			log.Printf("WARN: could not purge redis: %v", err)
		}
	})

	return addr
}

// SetupRabbitMQ starts a throwaway RabbitMQ container for one test and returns
// its AMQP URL. The container is purged when the test finishes.
func SetupRabbitMQ(t *testing.T) string {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	resource, addr, err := startContainer(pool, &dockertest.RunOptions{
		Repository: "rabbitmq",
		Tag:        "3-alpine",
	}, "5672/tcp", 2*time.Minute, func(addr string) error {
		conn, err := amqp091.Dial("amqp://guest:guest@" + addr + "/")
		if err != nil {
			return err
		}
		return conn.Close()
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			log.Printf("WARN: could not purge rabbitmq: %v", err)
		}
	})

	return "amqp://guest:guest@" + addr + "/"
}
