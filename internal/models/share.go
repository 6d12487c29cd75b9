// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// ContentKind distinguishes raw HTML submissions from Markdown source.
type ContentKind string

const (
	KindHTML     ContentKind = "html"
	KindMarkdown ContentKind = "markdown"
)

// Valid reports whether k is one of the two supported content kinds.
func (k ContentKind) Valid() bool {
	return k == KindHTML || k == KindMarkdown
}

// Share is an anonymous, immutable share record. It is created once,
// read many times, and never updated or deleted — there is no endpoint
// for either. The ID doubles as the public share token.
type Share struct {
	ID           string      `json:"id"`
	HTMLCode     string      `json:"htmlCode"`
	MarkdownCode *string     `json:"markdownCode"`
	Kind         ContentKind `json:"type"`
	CreatedAt    time.Time   `json:"createdAt"`
}
