// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all markshare
// entities. Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"markshare/internal/models"
)

var (
	// ErrIDConflict is returned when an insert hits the unique
	// constraint on shares.id — two allocators raced to the same token.
	// The caller treats it as one more collision and retries.
	ErrIDConflict = errors.New("share id already exists")

	// ErrNotFound is returned by mutations that matched no row.
	ErrNotFound = errors.New("record not found")
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// ShareStore handles share-record database operations. Shares are
// insert-only: there is no update or delete method on purpose.
type ShareStore struct {
	db *sql.DB
}

// NewShareStore creates a new ShareStore with the given database connection.
func NewShareStore(db *sql.DB) *ShareStore {
	return &ShareStore{db: db}
}

// Create inserts a new share record with a pre-allocated id. A unique
// violation on the id column is surfaced as ErrIDConflict.
func (s *ShareStore) Create(share *models.Share) (*models.Share, error) {
	result := &models.Share{}
	err := s.db.QueryRow(`
		INSERT INTO shares (id, html_code, markdown_code, kind)
		VALUES ($1, $2, $3, $4)
		RETURNING id, html_code, markdown_code, kind, created_at
	`, share.ID, share.HTMLCode, share.MarkdownCode, share.Kind).Scan(
		&result.ID, &result.HTMLCode, &result.MarkdownCode, &result.Kind, &result.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrIDConflict
		}
		return nil, fmt.Errorf("create share: %w", err)
	}
	return result, nil
}

// FindByID retrieves a share record by its token. Returns nil if not found.
func (s *ShareStore) FindByID(id string) (*models.Share, error) {
	share := &models.Share{}
	err := s.db.QueryRow(`
		SELECT id, html_code, markdown_code, kind, created_at
		FROM shares WHERE id = $1
	`, id).Scan(
		&share.ID, &share.HTMLCode, &share.MarkdownCode, &share.Kind, &share.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find share by id: %w", err)
	}
	return share, nil
}

// Exists reports whether a share token is already taken. Used by the
// allocator's uniqueness check.
func (s *ShareStore) Exists(id string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM shares WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("share exists: %w", err)
	}
	return exists, nil
}
