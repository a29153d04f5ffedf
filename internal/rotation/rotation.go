// Marquee - Home Screen Curation for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package rotation implements the daily rotating window used to vary home
// rows without any stored state. Every caller observing the same UTC day
// selects the same window.
package rotation

import "time"

// MillisPerDay is the length of one rotation period.
const MillisPerDay int64 = 86_400_000

// DayKey returns the number of whole UTC days since the Unix epoch.
// Instants before the epoch map to negative days.
func DayKey(now time.Time) int64 {
	ms := now.UnixMilli()
	day := ms / MillisPerDay
	if ms%MillisPerDay < 0 {
		day--
	}
	return day
}

// PickWindow returns count contiguous candidates starting at an offset that
// advances by one each day and wraps over the possible start positions.
// Candidates are returned unchanged when they already fit in count.
func PickWindow[T any](candidates []T, count int, now time.Time) []T {
	if len(candidates) <= count {
		return candidates
	}
	if count <= 0 {
		return candidates[:0]
	}

	positions := int64(len(candidates) - count + 1)
	start := DayKey(now) % positions
	if start < 0 {
		start += positions
	}
	return candidates[start : start+int64(count)]
}
