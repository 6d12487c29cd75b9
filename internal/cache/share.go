// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// share.go provides a Valkey-backed cache for share records. Shares are
// immutable once created, so cached entries never need invalidation —
// the TTL only bounds memory. Cache failures degrade to database reads,
// never to request failures.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"markshare/internal/models"
)

const (
	// shareKeyPrefix namespaces share keys in Valkey.
	shareKeyPrefix = "share:"

	// DefaultShareTTL is how long a share record stays cached.
	DefaultShareTTL = time.Hour
)

// ShareCache manages cached share records in Valkey.
type ShareCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewShareCache creates a share cache backed by the given Valkey client.
func NewShareCache(client *redis.Client, ttl time.Duration) *ShareCache {
	if ttl == 0 {
		ttl = DefaultShareTTL
	}
	return &ShareCache{client: client, ttl: ttl}
}

// Get retrieves a cached share record. Returns false on miss or on any
// cache error.
func (sc *ShareCache) Get(ctx context.Context, id string) (*models.Share, bool) {
	payload, err := sc.client.Get(ctx, shareKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("share cache get error", "id", id, "error", err)
		return nil, false
	}

	var share models.Share
	if err := json.Unmarshal(payload, &share); err != nil {
		slog.Warn("share cache decode error", "id", id, "error", err)
		return nil, false
	}

	slog.Debug("share cache hit", "id", id)
	return &share, true
}

// Set stores a share record with the configured TTL. Errors are logged
// and swallowed — caching is best effort.
func (sc *ShareCache) Set(ctx context.Context, share *models.Share) {
	payload, err := json.Marshal(share)
	if err != nil {
		slog.Warn("share cache encode error", "id", share.ID, "error", err)
		return
	}
	if err := sc.client.Set(ctx, shareKeyPrefix+share.ID, payload, sc.ttl).Err(); err != nil {
		slog.Warn("share cache set error", "id", share.ID, "error", err)
	}
}
