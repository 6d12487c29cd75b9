// Integration tests for the share cache. Skipped when Valkey is not
// reachable.
package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"markshare/internal/models"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testClient returns a Valkey client on DB 15, or skips the test.
func testClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
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

func TestShareCacheRoundTrip(t *testing.T) {
	client := testClient(t)
	sc := NewShareCache(client, time.Minute)
	ctx := context.Background()

	md := "# cached"
	share := &models.Share{
		ID:           "cacheTST",
		HTMLCode:     "<h1>cached</h1>",
		MarkdownCode: &md,
		Kind:         models.KindMarkdown,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	if _, ok := sc.Get(ctx, share.ID); ok {
		t.Fatal("unexpected hit before Set")
	}

	sc.Set(ctx, share)

	got, ok := sc.Get(ctx, share.ID)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if got.HTMLCode != share.HTMLCode || got.Kind != share.Kind {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.MarkdownCode == nil || *got.MarkdownCode != md {
		t.Errorf("markdown round-trip: %v", got.MarkdownCode)
	}
}

func TestShareCacheMiss(t *testing.T) {
	client := testClient(t)
	sc := NewShareCache(client, time.Minute)

	if _, ok := sc.Get(context.Background(), "missingID"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestShareCacheTTL(t *testing.T) {
	client := testClient(t)
	sc := NewShareCache(client, time.Second)
	ctx := context.Background()

	sc.Set(ctx, &models.Share{ID: "ttlTest1", HTMLCode: "x", Kind: models.KindHTML})

	if _, ok := sc.Get(ctx, "ttlTest1"); !ok {
		t.Fatal("expected hit within TTL")
	}

	time.Sleep(1500 * time.Millisecond)

	if _, ok := sc.Get(ctx, "ttlTest1"); ok {
		t.Error("expected miss after TTL expiry")
	}
}
