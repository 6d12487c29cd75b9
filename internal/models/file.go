// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// File is an owned, mutable document. Creating a file also creates a
// companion Share carrying the same rendered HTML; the two are linked
// only by ShareURL (a path, not a foreign key) and have independent
// lifecycles — deleting a file leaves its share untouched.
type File struct {
	ID         uuid.UUID   `json:"id"`
	Filename   string      `json:"filename"`
	Title      string      `json:"title"`
	Content    string      `json:"content,omitempty"`
	HTMLOutput string      `json:"htmlOutput,omitempty"`
	Kind       ContentKind `json:"type"` // immutable after creation
	ShareURL   string      `json:"shareUrl"`
	IsPublic   bool        `json:"isPublic"`
	CreatedBy  uuid.UUID   `json:"createdBy"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`

	// Creator is the owner summary attached to list and detail reads.
	Creator *UserSummary `json:"creator,omitempty"`
}

// FileFilter narrows List results. Zero values mean "no filter".
type FileFilter struct {
	Kind       ContentKind
	OnlyPublic bool
	CreatedBy  uuid.UUID
}
