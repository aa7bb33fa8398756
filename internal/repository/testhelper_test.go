package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"

	"blognest-backend/internal/domain"
	"blognest-backend/internal/infrastructure/database"
	"blognest-backend/internal/repository"
)

// TestDB holds the test database connection and container
type TestDB struct {
	Pool      *pgxpool.Pool
	Container testcontainers.Container
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL container and applies migrations
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	ctx := context.Background()

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	if err := database.MigratePostgres(connStr, migrationsPath); err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := database.NewPostgres(ctx, database.PoolConfig{
		URL:            connStr,
		ConnectTimeout: 10 * time.Second,
		MaxConns:       5,
	})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		t.Fatalf("Failed to connect to database: %v", err)
	}

	return &TestDB{
		Pool:      pool,
		Container: pgContainer,
		ConnStr:   connStr,
	}
}

// Cleanup closes the connection pool and terminates the container
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	if tdb.Pool != nil {
		tdb.Pool.Close()
	}
	if tdb.Container != nil {
		if err := tdb.Container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// TruncateTables clears all data from tables for test isolation
func (tdb *TestDB) TruncateTables(t *testing.T, tables ...string) {
	t.Helper()
	ctx := context.Background()
	for _, table := range tables {
		_, err := tdb.Pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			t.Fatalf("Failed to truncate table %s: %v", table, err)
		}
	}
}

// TestMongo holds the test MongoDB connection and container.
type TestMongo struct {
	Mongo     *database.Mongo
	Container testcontainers.Container
}

// SetupTestMongo creates a MongoDB container with the repository indexes.
func SetupTestMongo(t *testing.T) *TestMongo {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("Failed to start mongodb container: %v", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to get connection string: %v", err)
	}

	m, err := database.NewMongo(ctx, database.MongoConfig{
		URI:                    uri,
		Database:               "blognest_test",
		ServerSelectionTimeout: 10 * time.Second,
	})
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to connect to mongodb: %v", err)
	}

	if err := repository.EnsureMongoIndexes(ctx, m.DB); err != nil {
		_ = m.Close(ctx)
		_ = container.Terminate(ctx)
		t.Fatalf("Failed to create indexes: %v", err)
	}

	return &TestMongo{Mongo: m, Container: container}
}

// Cleanup disconnects the client and terminates the container.
func (tm *TestMongo) Cleanup(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	if tm.Mongo != nil {
		_ = tm.Mongo.Close(ctx)
	}
	if tm.Container != nil {
		if err := tm.Container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// Drop clears the named collections. Indexes are kept.
func (tm *TestMongo) Drop(t *testing.T, collections ...string) {
	t.Helper()
	for _, name := range collections {
		if _, err := tm.Mongo.DB.Collection(name).DeleteMany(context.Background(), bson.D{}); err != nil {
			t.Fatalf("Failed to clear collection %s: %v", name, err)
		}
	}
}

// stores is one backend's set of repositories plus a reset hook.
type stores struct {
	name     string
	users    repository.UserRepository
	blogs    repository.BlogRepository
	comments repository.CommentRepository
	reset    func(t *testing.T)
}

// forEachStore runs fn against PostgreSQL and MongoDB. Both containers are
// started once per call and torn down when the test ends.
func forEachStore(t *testing.T, fn func(t *testing.T, s stores)) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pg := SetupTestDB(t)
	t.Cleanup(func() { pg.Cleanup(t) })

	mg := SetupTestMongo(t)
	t.Cleanup(func() { mg.Cleanup(t) })

	backends := []stores{
		{
			name:     "postgres",
			users:    repository.NewPostgresUserRepository(pg.Pool),
			blogs:    repository.NewPostgresBlogRepository(pg.Pool),
			comments: repository.NewPostgresCommentRepository(pg.Pool),
			reset:    func(t *testing.T) { pg.TruncateTables(t, "comments", "blogs", "users") },
		},
		{
			name:     "mongo",
			users:    repository.NewMongoUserRepository(mg.Mongo.DB),
			blogs:    repository.NewMongoBlogRepository(mg.Mongo.DB),
			comments: repository.NewMongoCommentRepository(mg.Mongo.DB),
			reset: func(t *testing.T) {
				mg.Drop(t, repository.CommentsCollection, repository.BlogsCollection, repository.UsersCollection)
			},
		},
	}

	for _, s := range backends {
		t.Run(s.name, func(t *testing.T) {
			fn(t, s)
		})
	}
}

// seedUser stores a user and returns it.
func seedUser(t *testing.T, repo repository.UserRepository, username string) *domain.User {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Millisecond)
	u := &domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$04$abcdefghijklmnopqrstuv",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

// seedBlog stores a blog by author created at the given offset from now.
func seedBlog(t *testing.T, repo repository.BlogRepository, author *domain.User, title string, offset time.Duration) *domain.Blog {
	t.Helper()
	at := time.Now().UTC().Add(offset).Truncate(time.Millisecond)
	b := &domain.Blog{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   "content of " + title,
		Category:  []string{"go"},
		AuthorID:  author.ID,
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}
