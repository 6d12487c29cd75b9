// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"markshare/internal/models"
)

// FileStore handles all file-related database operations.
type FileStore struct {
	db *sql.DB
}

// NewFileStore creates a new FileStore with the given database connection.
func NewFileStore(db *sql.DB) *FileStore {
	return &FileStore{db: db}
}

// Create inserts a new file and returns it with the generated ID and
// timestamps. The caller supplies the already-rendered HTML output and
// the share URL of the companion share record.
func (s *FileStore) Create(f *models.File) (*models.File, error) {
	result := &models.File{}
	err := s.db.QueryRow(`
		INSERT INTO files (filename, title, content, html_output, kind, share_url, is_public, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, filename, title, content, html_output, kind, share_url,
		          is_public, created_by, created_at, updated_at
	`, f.Filename, f.Title, f.Content, f.HTMLOutput, f.Kind, f.ShareURL, f.IsPublic, f.CreatedBy,
	).Scan(
		&result.ID, &result.Filename, &result.Title, &result.Content, &result.HTMLOutput,
		&result.Kind, &result.ShareURL, &result.IsPublic, &result.CreatedBy,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	return result, nil
}

// FindByID retrieves a full file record, content included, with the
// creator summary joined. Returns nil if not found. Visibility is the
// caller's concern — this read does not filter on is_public.
func (s *FileStore) FindByID(id uuid.UUID) (*models.File, error) {
	f := &models.File{Creator: &models.UserSummary{}}
	err := s.db.QueryRow(`
		SELECT f.id, f.filename, f.title, f.content, f.html_output, f.kind,
		       f.share_url, f.is_public, f.created_by, f.created_at, f.updated_at,
		       u.id, u.username, u.email
		FROM files f
		JOIN users u ON u.id = f.created_by
		WHERE f.id = $1
	`, id).Scan(
		&f.ID, &f.Filename, &f.Title, &f.Content, &f.HTMLOutput, &f.Kind,
		&f.ShareURL, &f.IsPublic, &f.CreatedBy, &f.CreatedAt, &f.UpdatedAt,
		&f.Creator.ID, &f.Creator.Username, &f.Creator.Email,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find file by id: %w", err)
	}
	return f, nil
}

// List returns file metadata matching the filter, newest first, with the
// creator summary attached. Content columns are deliberately not
// selected — list views are metadata-only to bound response size.
func (s *FileStore) List(filter models.FileFilter) ([]models.File, error) {
	query := `
		SELECT f.id, f.filename, f.title, f.kind, f.share_url, f.is_public,
		       f.created_by, f.created_at, f.updated_at,
		       u.id, u.username, u.email
		FROM files f
		JOIN users u ON u.id = f.created_by
		WHERE 1=1`
	var args []any

	if filter.Kind != "" {
		args = append(args, filter.Kind)
		query += fmt.Sprintf(" AND f.kind = $%d", len(args))
	}
	if filter.OnlyPublic {
		query += " AND f.is_public = TRUE"
	}
	if filter.CreatedBy != uuid.Nil {
		args = append(args, filter.CreatedBy)
		query += fmt.Sprintf(" AND f.created_by = $%d", len(args))
	}
	query += " ORDER BY f.created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var files []models.File
	for rows.Next() {
		f := models.File{Creator: &models.UserSummary{}}
		if err := rows.Scan(
			&f.ID, &f.Filename, &f.Title, &f.Kind, &f.ShareURL, &f.IsPublic,
			&f.CreatedBy, &f.CreatedAt, &f.UpdatedAt,
			&f.Creator.ID, &f.Creator.Username, &f.Creator.Email,
		); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// Update writes the merged field values of an existing file. The kind
// column is immutable and never touched. Returns ErrNotFound if the row
// is gone.
func (s *FileStore) Update(f *models.File) (*models.File, error) {
	result := &models.File{}
	err := s.db.QueryRow(`
		UPDATE files SET
			filename = $1, title = $2, content = $3, html_output = $4,
			is_public = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id, filename, title, content, html_output, kind, share_url,
		          is_public, created_by, created_at, updated_at
	`, f.Filename, f.Title, f.Content, f.HTMLOutput, f.IsPublic, f.ID,
	).Scan(
		&result.ID, &result.Filename, &result.Title, &result.Content, &result.HTMLOutput,
		&result.Kind, &result.ShareURL, &result.IsPublic, &result.CreatedBy,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update file: %w", err)
	}
	return result, nil
}

// Delete removes a file by ID. Returns ErrNotFound if no row matched.
// The companion share record is left untouched.
func (s *FileStore) Delete(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete file rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
