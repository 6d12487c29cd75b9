// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts Markdown source text into HTML using goldmark.
// It enables unsafe HTML pass-through so that raw HTML embedded in the
// Markdown renders correctly, and highlights fenced code blocks with
// chroma in class-based mode so the output carries no inline styles.
//
// Conversion is a pure function: the same source and options always
// produce the same HTML.
package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// MaxContentLen is the largest source accepted anywhere in the system,
// enforced before any parsing or persistence happens.
const MaxContentLen = 1_000_000

var (
	// ErrEmptyContent is returned for empty or whitespace-only source.
	ErrEmptyContent = errors.New("content is empty")

	// ErrContentTooLarge is returned when source exceeds MaxContentLen.
	ErrContentTooLarge = errors.New("content exceeds maximum size")
)

// Options toggles the conversion pipeline features. The zero value
// disables everything; use DefaultOptions for the API defaults.
type Options struct {
	GFM       bool // GitHub-Flavored Markdown: tables, strikethrough, autolinks, task lists
	Highlight bool // syntax highlighting for fenced code blocks
	Wrapper   bool // embed the fragment in a standalone HTML document
}

// DefaultOptions returns the conversion defaults: everything enabled.
func DefaultOptions() Options {
	return Options{GFM: true, Highlight: true, Wrapper: true}
}

// converters holds one configured goldmark instance per GFM/Highlight
// combination. Instances are immutable and safe for concurrent use, so
// they are built once and reused across requests.
var converters = func() map[[2]bool]goldmark.Markdown {
	m := make(map[[2]bool]goldmark.Markdown, 4)
	for _, gfm := range []bool{false, true} {
		for _, hl := range []bool{false, true} {
			var exts []goldmark.Extender
			if gfm {
				exts = append(exts, extension.GFM)
			}
			if hl {
				exts = append(exts, highlighting.NewHighlighting(
					// Class-based output: tokens get chroma classes, the
					// wrapper stylesheet supplies the colors.
					highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
				))
			}
			m[[2]bool{gfm, hl}] = goldmark.New(
				goldmark.WithExtensions(exts...),
				goldmark.WithRendererOptions(
					html.WithUnsafe(), // Raw HTML in the Markdown passes through unescaped
				),
			)
		}
	}
	return m
}()

// Validate checks the universal content constraints. It is called by
// Convert and Render, and again at the HTTP boundary so oversize or
// empty input never reaches the pipeline or the store.
func Validate(source string) error {
	if strings.TrimSpace(source) == "" {
		return ErrEmptyContent
	}
	if len(source) > MaxContentLen {
		return ErrContentTooLarge
	}
	return nil
}

// Convert renders Markdown source into HTML according to opts. When
// opts.Wrapper is set, the fragment is embedded in a complete document
// with an embedded stylesheet so it renders identically with no external
// dependencies.
func Convert(source string, opts Options) (string, error) {
	if err := Validate(source); err != nil {
		return "", err
	}

	conv := converters[[2]bool{opts.GFM, opts.Highlight}]
	var buf bytes.Buffer
	if err := conv.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}

	out := buf.String()
	if opts.Wrapper {
		out = Wrap(out)
	}
	return out, nil
}

// Wrap embeds an HTML fragment into the standalone document shell.
func Wrap(fragment string) string {
	var b strings.Builder
	b.Grow(len(documentHead) + len(fragment) + len(documentFoot))
	b.WriteString(documentHead)
	b.WriteString(fragment)
	b.WriteString(documentFoot)
	return b.String()
}
