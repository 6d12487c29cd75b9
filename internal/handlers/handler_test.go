// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Valkey are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"markshare/internal/auth"
	"markshare/internal/cache"
	"markshare/internal/database"
	"markshare/internal/middleware"
	"markshare/internal/models"
	"markshare/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "markshare")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "markshare")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "share:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB         *sql.DB
	Valkey     *redis.Client
	ShareStore *store.ShareStore
	FileStore  *store.FileStore
	UserStore  *store.UserStore
	ShareCache *cache.ShareCache
	Gate       *auth.Gate
	Markdown   *Markdown
	Shares     *Shares
	Files      *Files
	Auth       *Auth
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	shareStore := store.NewShareStore(db)
	fileStore := store.NewFileStore(db)
	userStore := store.NewUserStore(db)
	shareCache := cache.NewShareCache(vk, 1*time.Minute)
	gate := auth.NewGate("handler-test-secret")

	return &testEnv{
		DB:         db,
		Valkey:     vk,
		ShareStore: shareStore,
		FileStore:  fileStore,
		UserStore:  userStore,
		ShareCache: shareCache,
		Gate:       gate,
		Markdown:   NewMarkdown(),
		Shares:     NewShares(shareStore, shareCache),
		Files:      NewFiles(fileStore, shareStore, shareCache),
		Auth:       NewAuth(gate, userStore),
	}
}

// testUser creates a throwaway user and removes it (and its files) after
// the test.
func testUser(t *testing.T, env *testEnv, password string) *models.User {
	t.Helper()

	name := fmt.Sprintf("handler-test-%d", time.Now().UnixNano())
	user, err := env.UserStore.Create(name, name+"@example.com", password)
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM files WHERE created_by = $1", user.ID)
		env.DB.Exec("DELETE FROM users WHERE id = $1", user.ID)
	})
	return user
}

// ctxWithIdentity adds an owner identity to a context using the middleware key.
func ctxWithIdentity(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, middleware.IdentityKey, user)
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// cleanShares removes test share records by id after the test.
func cleanShares(t *testing.T, db *sql.DB, ids ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, id := range ids {
			db.Exec("DELETE FROM shares WHERE id = $1", id)
		}
	})
}
