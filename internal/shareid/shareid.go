// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package shareid allocates the short public tokens that address share
// records. Tokens are 8 alphanumeric characters (~47.6 bits) — chosen
// for short, URL-friendly paths, not cryptographic unguessability.
package shareid

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
)

const (
	// Length is the fixed token length.
	Length = 8

	// alphabet is the 62-symbol token character set.
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// maxAttempts bounds the collision-retry loop. Hitting the bound
	// means either a pathological collision storm or a persistence
	// outage masquerading as "exists" — the caller should report a
	// transient server error, not keep retrying.
	maxAttempts = 10
)

// ErrExhausted is returned when maxAttempts candidates all collided.
var ErrExhausted = errors.New("share id allocation exhausted")

// TakenFunc reports whether an id is already in use.
type TakenFunc func(ctx context.Context, id string) (bool, error)

// New returns a random 8-character token. It does not check uniqueness.
func New() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("share id entropy: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}

// Allocate mints a token that taken reports as unused, retrying on
// collision up to the attempt bound. There is no reservation step: two
// concurrent allocations can both observe "unused" for the same
// candidate, so the store must enforce uniqueness on insert and the
// caller should treat a conflict there as one more collision.
func Allocate(ctx context.Context, taken TakenFunc) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		id, err := New()
		if err != nil {
			return "", err
		}
		exists, err := taken(ctx, id)
		if err != nil {
			return "", fmt.Errorf("share id lookup: %w", err)
		}
		if !exists {
			return id, nil
		}
	}
	return "", ErrExhausted
}
