// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"markshare/internal/cache"
	"markshare/internal/markdown"
	"markshare/internal/models"
	"markshare/internal/shareid"
	"markshare/internal/store"
)

// insertRetries bounds how many times a unique-violation on insert
// re-enters the allocation loop. Each allocation already retries
// candidates internally; losing the insert race repeatedly means
// something is badly wrong.
const insertRetries = 3

// Shares groups the anonymous share handlers. Shares are create-and-read
// only — no update or delete exists anywhere.
type Shares struct {
	shareStore *store.ShareStore
	shareCache *cache.ShareCache
}

// NewShares creates the Shares handler group. shareCache may be nil.
func NewShares(shareStore *store.ShareStore, shareCache *cache.ShareCache) *Shares {
	return &Shares{shareStore: shareStore, shareCache: shareCache}
}

// shareRequest is the POST /api/share body. The HTML is pre-rendered by
// the caller; the optional markdown is kept for display alongside it.
type shareRequest struct {
	HTMLCode     string  `json:"htmlCode"`
	MarkdownCode *string `json:"markdownCode"`
	Kind         string  `json:"type"`
}

// Create allocates a share token and persists the record.
func (s *Shares) Create(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, errOversizeBody) {
			writeError(w, http.StatusRequestEntityTooLarge, "content exceeds the 1,000,000 character limit")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := markdown.Validate(req.HTMLCode); err != nil {
		switch {
		case errors.Is(err, markdown.ErrEmptyContent):
			writeError(w, http.StatusBadRequest, "content must not be empty")
		default:
			writeError(w, http.StatusBadRequest, "content exceeds the 1,000,000 character limit")
		}
		return
	}

	kind := models.ContentKind(req.Kind)
	if req.Kind == "" {
		kind = models.KindHTML
	}
	if !kind.Valid() {
		writeError(w, http.StatusBadRequest, "type must be html or markdown")
		return
	}

	var md *string
	if req.MarkdownCode != nil {
		trimmed := strings.TrimSpace(*req.MarkdownCode)
		if trimmed != "" {
			md = &trimmed
		}
	}

	share, err := createShare(r.Context(), s.shareStore, strings.TrimSpace(req.HTMLCode), md, kind)
	if err != nil {
		if errors.Is(err, shareid.ErrExhausted) {
			writeError(w, http.StatusInternalServerError, "could not allocate a share id, please retry")
			return
		}
		slog.Error("share create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save the share")
		return
	}

	if s.shareCache != nil {
		s.shareCache.Set(r.Context(), share)
	}

	slog.Info("share created", "id", share.ID, "kind", share.Kind)
	writeJSON(w, http.StatusOK, map[string]any{
		"id":      share.ID,
		"type":    share.Kind,
		"message": "share link created",
	})
}

// Get returns the stored pair for a share token.
func (s *Shares) Get(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing share id")
		return
	}

	share, err := s.lookup(r.Context(), id)
	if err != nil {
		slog.Error("share lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load the share")
		return
	}
	if share == nil {
		writeError(w, http.StatusNotFound, "share not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":           share.ID,
		"htmlCode":     share.HTMLCode,
		"markdownCode": share.MarkdownCode,
		"type":         share.Kind,
		"createdAt":    share.CreatedAt,
	})
}

// lookup reads a share through the cache. Shares never change, so a hit
// is always current.
func (s *Shares) lookup(ctx context.Context, id string) (*models.Share, error) {
	if s.shareCache != nil {
		if share, ok := s.shareCache.Get(ctx, id); ok {
			return share, nil
		}
	}

	share, err := s.shareStore.FindByID(id)
	if err != nil || share == nil {
		return share, err
	}
	if s.shareCache != nil {
		s.shareCache.Set(ctx, share)
	}
	return share, nil
}

// createShare mints a unique token and inserts the record. A unique
// violation means a concurrent request won the race to the same token
// after the availability check; it re-enters allocation a bounded number
// of times instead of failing outright.
func createShare(ctx context.Context, shares *store.ShareStore, html string, md *string, kind models.ContentKind) (*models.Share, error) {
	taken := func(_ context.Context, id string) (bool, error) {
		return shares.Exists(id)
	}

	for attempt := 0; attempt < insertRetries; attempt++ {
		id, err := shareid.Allocate(ctx, taken)
		if err != nil {
			return nil, err
		}

		created, err := shares.Create(&models.Share{
			ID:           id,
			HTMLCode:     html,
			MarkdownCode: md,
			Kind:         kind,
		})
		if errors.Is(err, store.ErrIDConflict) {
			slog.Warn("share id insert race, reallocating", "id", id, "attempt", attempt+1)
			continue
		}
		if err != nil {
			return nil, err
		}
		return created, nil
	}
	return nil, shareid.ErrExhausted
}
