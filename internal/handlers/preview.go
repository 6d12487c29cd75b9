// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Preview serves the stored rendering of a share token verbatim as an
// HTML page. This is the public face of every share link.
func (s *Shares) Preview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	share, err := s.lookup(r.Context(), id)
	if err != nil {
		slog.Error("preview lookup failed", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if share == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(share.HTMLCode))
}
