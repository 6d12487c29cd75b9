// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import "markshare/internal/models"

// Render produces the stored HTML for submitted content. HTML input is
// passed through verbatim — the caller already decided the publish
// policy — while Markdown runs the full conversion pipeline without the
// document wrapper, since stored output is a fragment.
func Render(source string, kind models.ContentKind) (string, error) {
	if err := Validate(source); err != nil {
		return "", err
	}
	if kind == models.KindHTML {
		return source, nil
	}
	return Convert(source, Options{GFM: true, Highlight: true})
}
