// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"markshare/internal/cache"
	"markshare/internal/markdown"
	"markshare/internal/middleware"
	"markshare/internal/models"
	"markshare/internal/shareid"
	"markshare/internal/store"
)

// Files groups the owned-file handlers. Creation renders the content,
// mints a companion share record, and links the two by the share path;
// the records then live independently.
type Files struct {
	fileStore  *store.FileStore
	shareStore *store.ShareStore
	shareCache *cache.ShareCache
}

// NewFiles creates the Files handler group. shareCache may be nil.
func NewFiles(fileStore *store.FileStore, shareStore *store.ShareStore, shareCache *cache.ShareCache) *Files {
	return &Files{fileStore: fileStore, shareStore: shareStore, shareCache: shareCache}
}

type fileCreateRequest struct {
	Content  string `json:"content"`
	Kind     string `json:"type"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
	IsPublic bool   `json:"isPublic"`
}

type fileUpdateRequest struct {
	Content  *string `json:"content"`
	Title    *string `json:"title"`
	Filename *string `json:"filename"`
	IsPublic *bool   `json:"isPublic"`
}

// fileMeta strips content columns from a file for response envelopes.
func fileMeta(f *models.File) map[string]any {
	return map[string]any{
		"id":        f.ID,
		"filename":  f.Filename,
		"title":     f.Title,
		"type":      f.Kind,
		"shareUrl":  f.ShareURL,
		"isPublic":  f.IsPublic,
		"createdAt": f.CreatedAt,
		"updatedAt": f.UpdatedAt,
	}
}

// Create validates, renders, mints a companion share, and persists the
// file. Validation happens before any side effect: an invalid request
// writes nothing anywhere.
func (h *Files) Create(w http.ResponseWriter, r *http.Request) {
	owner := middleware.IdentityFromCtx(r.Context())
	if owner == nil {
		// Anonymous file creation is disallowed even though anonymous
		// shares are allowed.
		writeError(w, http.StatusBadRequest, "missing owner, please sign in again")
		return
	}

	var req fileCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, errOversizeBody) {
			writeError(w, http.StatusRequestEntityTooLarge, "content exceeds the 1,000,000 character limit")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	kind := models.ContentKind(req.Kind)
	if !kind.Valid() {
		writeError(w, http.StatusBadRequest, "type must be html or markdown")
		return
	}
	if !h.validContent(w, req.Content) {
		return
	}

	htmlOutput, err := markdown.Render(req.Content, kind)
	if err != nil {
		slog.Error("file render failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render the content")
		return
	}

	// Companion share record, linked by path only.
	var md *string
	if kind == models.KindMarkdown {
		md = &req.Content
	}
	share, err := createShare(r.Context(), h.shareStore, htmlOutput, md, kind)
	if err != nil {
		if errors.Is(err, shareid.ErrExhausted) {
			writeError(w, http.StatusInternalServerError, "could not allocate a share id, please retry")
			return
		}
		slog.Error("companion share create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create the file")
		return
	}
	if h.shareCache != nil {
		h.shareCache.Set(r.Context(), share)
	}

	filename := strings.TrimSpace(req.Filename)
	if filename == "" {
		filename = fmt.Sprintf("%s-%d", kind, time.Now().UnixMilli())
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = filename
	}

	file, err := h.fileStore.Create(&models.File{
		Filename:   filename,
		Title:      title,
		Content:    req.Content,
		HTMLOutput: htmlOutput,
		Kind:       kind,
		ShareURL:   "/preview/" + share.ID,
		IsPublic:   req.IsPublic,
		CreatedBy:  owner.ID,
	})
	if err != nil {
		slog.Error("file create failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create the file")
		return
	}

	slog.Info("file created", "id", file.ID, "kind", file.Kind, "owner", owner.Username)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"file":    fileMeta(file),
		"message": "file created",
	})
}

// List returns file metadata matching the query filters, newest first.
func (h *Files) List(w http.ResponseWriter, r *http.Request) {
	var filter models.FileFilter

	if kind := models.ContentKind(r.URL.Query().Get("type")); kind.Valid() {
		filter.Kind = kind
	}
	if r.URL.Query().Get("public") == "true" {
		filter.OnlyPublic = true
	}
	if createdBy := r.URL.Query().Get("createdBy"); createdBy != "" {
		id, err := uuid.Parse(createdBy)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid createdBy id")
			return
		}
		filter.CreatedBy = id
	}

	files, err := h.fileStore.List(filter)
	if err != nil {
		slog.Error("file list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list files")
		return
	}

	items := make([]map[string]any, 0, len(files))
	for i := range files {
		meta := fileMeta(&files[i])
		meta["creator"] = files[i].Creator
		items = append(items, meta)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"files":   items,
		"total":   len(items),
	})
}

// Get returns the full record, content included. Visibility of private
// files is the caller's concern on this single-item read.
func (h *Files) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}

	file, err := h.fileStore.FindByID(id)
	if err != nil {
		slog.Error("file lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load the file")
		return
	}
	if file == nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"file":    file,
	})
}

// Update applies a partial patch. Content is re-rendered only when it
// actually changed — an unchanged body leaves the stored HTML untouched.
func (h *Files) Update(w http.ResponseWriter, r *http.Request) {
	owner := middleware.IdentityFromCtx(r.Context())
	if owner == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}

	var req fileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, errOversizeBody) {
			writeError(w, http.StatusRequestEntityTooLarge, "content exceeds the 1,000,000 character limit")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	file, err := h.fileStore.FindByID(id)
	if err != nil {
		slog.Error("file lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load the file")
		return
	}
	if file == nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}
	if file.CreatedBy != owner.ID {
		writeError(w, http.StatusForbidden, "not the owner of this file")
		return
	}

	// Re-render only on an actual content change. The kind is immutable,
	// so the stored kind decides the pipeline.
	if req.Content != nil && *req.Content != file.Content {
		if !h.validContent(w, *req.Content) {
			return
		}
		htmlOutput, err := markdown.Render(*req.Content, file.Kind)
		if err != nil {
			slog.Error("file re-render failed", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to render the content")
			return
		}
		file.Content = *req.Content
		file.HTMLOutput = htmlOutput
	}
	if req.Filename != nil {
		file.Filename = *req.Filename
	}
	if req.Title != nil {
		file.Title = *req.Title
	}
	if req.IsPublic != nil {
		file.IsPublic = *req.IsPublic
	}

	updated, err := h.fileStore.Update(file)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "file not found")
			return
		}
		slog.Error("file update failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update the file")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"file":    fileMeta(updated),
		"message": "file updated",
	})
}

// Delete removes a file. The companion share record stays — share links
// keep working after the file is gone.
func (h *Files) Delete(w http.ResponseWriter, r *http.Request) {
	owner := middleware.IdentityFromCtx(r.Context())
	if owner == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}

	file, err := h.fileStore.FindByID(id)
	if err != nil {
		slog.Error("file lookup failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load the file")
		return
	}
	if file == nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}
	if file.CreatedBy != owner.ID {
		writeError(w, http.StatusForbidden, "not the owner of this file")
		return
	}

	if err := h.fileStore.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "file not found")
			return
		}
		slog.Error("file delete failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete the file")
		return
	}

	slog.Info("file deleted", "id", id, "owner", owner.Username)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "file deleted",
	})
}

// validContent reports the shared empty/oversize checks, writing the
// error response itself on failure.
func (h *Files) validContent(w http.ResponseWriter, content string) bool {
	switch err := markdown.Validate(content); {
	case errors.Is(err, markdown.ErrEmptyContent):
		writeError(w, http.StatusBadRequest, "content must not be empty")
		return false
	case errors.Is(err, markdown.ErrContentTooLarge):
		writeError(w, http.StatusBadRequest, "content exceeds the 1,000,000 character limit")
		return false
	}
	return true
}
