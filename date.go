// Copyright 2025 JohnDeved
// SPDX-License-Identifier: MIT

package metaview

import (
	"strings"
	"time"
)

// displayDateLayout is the fixed English long form used for all dates,
// e.g. "Jan 5, 2024, 3:45 PM".
const displayDateLayout = "Jan 2, 2006, 3:04 PM"

// dateLayouts are the parse attempts, tried in order. The first two cover
// the EXIF encoding after its colons have been rewritten; the rest cover
// XMP/ISO forms with and without timezone offsets.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02",
}

// FormatDate renders a tag date as a display string.
//
// The EXIF native encoding "YYYY:MM:DD HH:MM:SS" has its leading date
// colons rewritten to dashes before parsing. Input that does not parse as
// a date is returned unchanged; malformed input is a stable fixed point,
// not an error. Empty input yields "".
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.TrimSpace(raw)
	if hasColonDatePrefix(s) {
		s = strings.Replace(s[:10], ":", "-", 2) + s[10:]
	}
	for _, layout := range dateLayouts {
		if tm, err := time.Parse(layout, s); err == nil {
			return tm.Format(displayDateLayout)
		}
	}
	return raw
}

// hasColonDatePrefix reports whether s starts with the decoder's native
// "YYYY:MM:DD" date encoding.
func hasColonDatePrefix(s string) bool {
	if len(s) < 10 {
		return false
	}
	for i, r := range s[:10] {
		if i == 4 || i == 7 {
			if r != ':' {
				return false
			}
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
