// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"markshare/internal/markdown"
)

// Markdown groups the stateless conversion handlers. Conversion has no
// side effects: nothing is persisted, the rendered HTML is only echoed
// back to the caller.
type Markdown struct{}

// NewMarkdown creates the Markdown handler group.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// convertRequest is the POST /api/markdown body. Option fields are
// pointers so an omitted toggle defaults to enabled.
type convertRequest struct {
	Markdown string          `json:"markdown"`
	Options  *convertOptions `json:"options"`
}

type convertOptions struct {
	EnableGFM       *bool `json:"enableGfm"`
	EnableHighlight *bool `json:"enableHighlight"`
	Wrapper         *bool `json:"wrapper"`
}

// resolve applies the defaults (all enabled) over the submitted toggles.
func (o *convertOptions) resolve() markdown.Options {
	opts := markdown.DefaultOptions()
	if o == nil {
		return opts
	}
	if o.EnableGFM != nil {
		opts.GFM = *o.EnableGFM
	}
	if o.EnableHighlight != nil {
		opts.Highlight = *o.EnableHighlight
	}
	if o.Wrapper != nil {
		opts.Wrapper = *o.Wrapper
	}
	return opts
}

// Convert renders submitted Markdown and echoes the input and resolved
// toggles alongside the HTML.
func (m *Markdown) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := decodeJSON(r, &req); err != nil {
		if errors.Is(err, errOversizeBody) {
			writeError(w, http.StatusRequestEntityTooLarge, "content exceeds the 1,000,000 character limit")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	opts := req.Options.resolve()
	html, err := markdown.Convert(req.Markdown, opts)
	switch {
	case errors.Is(err, markdown.ErrEmptyContent):
		writeError(w, http.StatusBadRequest, "markdown content must not be empty")
		return
	case errors.Is(err, markdown.ErrContentTooLarge):
		writeError(w, http.StatusBadRequest, "content exceeds the 1,000,000 character limit")
		return
	case err != nil:
		slog.Error("markdown conversion failed", "error", err)
		writeError(w, http.StatusInternalServerError, "markdown conversion failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"html":     html,
		"markdown": req.Markdown,
		"options": map[string]bool{
			"enableGfm":       opts.GFM,
			"enableHighlight": opts.Highlight,
			"wrapper":         opts.Wrapper,
		},
		"message": "Markdown converted successfully",
	})
}

// Usage describes the conversion endpoint for GET requests.
func (m *Markdown) Usage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Markdown conversion API",
		"usage": map[string]any{
			"method": "POST",
			"body": map[string]any{
				"markdown": "string (required)",
				"options": map[string]string{
					"enableGfm":       "boolean (default: true)",
					"enableHighlight": "boolean (default: true)",
					"wrapper":         "boolean (default: true)",
				},
			},
		},
	})
}
