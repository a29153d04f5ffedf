// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package backdrop

import (
	"fmt"
	"strconv"
	"strings"
)

type policyKind int

const (
	policyFirst policyKind = iota
	policyRandom
	policyPreferred
)

// IndexPolicy selects which image of a list to use.
// The zero value picks the first image.
type IndexPolicy struct {
	kind      policyKind
	preferred int
}

// FirstIndex always selects index 0.
func FirstIndex() IndexPolicy { return IndexPolicy{kind: policyFirst} }

// RandomIndex selects a uniformly random index.
func RandomIndex() IndexPolicy { return IndexPolicy{kind: policyRandom} }

// PreferIndex selects n, clamped into the available range.
func PreferIndex(n int) IndexPolicy { return IndexPolicy{kind: policyPreferred, preferred: n} }

// String implements fmt.Stringer.
func (p IndexPolicy) String() string {
	switch p.kind {
	case policyRandom:
		return "random"
	case policyPreferred:
		return strconv.Itoa(p.preferred)
	default:
		return "first"
	}
}

// ParseIndexPolicy parses an index policy from a query string value.
// Accepted forms are "", "first", "random" and a decimal integer.
func ParseIndexPolicy(s string) (IndexPolicy, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "first":
		return FirstIndex(), nil
	case "random":
		return RandomIndex(), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return IndexPolicy{}, fmt.Errorf("invalid backdrop index %q: must be \"random\" or an integer", s)
	}
	return PreferIndex(n), nil
}

// pick returns the index to use in a list of count images.
func (p IndexPolicy) pick(count int, rnd IntSource) int {
	if count <= 0 {
		return 0
	}

	switch p.kind {
	case policyRandom:
		if rnd == nil || count == 1 {
			return 0
		}
		return rnd.Intn(count)
	case policyPreferred:
		return clamp(p.preferred, 0, count-1)
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
