// Copyright 2025 JohnDeved
// SPDX-License-Identifier: MIT

package metaview

// GPSCoordinate is a reconstructed GPS position in signed decimal degrees.
// Lat is in [-90, 90], Long in [-180, 180]; LatRef and LongRef carry the
// hemisphere references the signs were derived from.
type GPSCoordinate struct {
	Lat     float64 `json:"lat"`
	Long    float64 `json:"lng"`
	LatRef  string  `json:"latRef"`
	LongRef string  `json:"lngRef"`
}

// GPS reconstructs the GPS coordinate from the GPSLatitude/GPSLongitude
// tags and their hemisphere references.
//
// Both coordinate tags must expose a value that is a 3-element sequence of
// degrees, minutes and seconds; each element may be a rational (a Rat or a
// 2-element numerator/denominator pair) or a plain number. Partial GPS is
// not meaningful, so any structural mismatch reports false.
func (t Tags) GPS() (GPSCoordinate, bool) {
	latTag, okLat := t["GPSLatitude"]
	longTag, okLong := t["GPSLongitude"]
	if !okLat || !okLong {
		return GPSCoordinate{}, false
	}

	latRef := t.gpsRef("GPSLatitudeRef", "N")
	longRef := t.gpsRef("GPSLongitudeRef", "E")

	lat, ok := dmsToDegrees(latTag.Value, latRef)
	if !ok {
		return GPSCoordinate{}, false
	}
	long, ok := dmsToDegrees(longTag.Value, longRef)
	if !ok {
		return GPSCoordinate{}, false
	}

	return GPSCoordinate{
		Lat:     lat,
		Long:    long,
		LatRef:  latRef,
		LongRef: longRef,
	}, true
}

// gpsRef extracts a hemisphere reference: the first element of the tag's
// value sequence if there is one, else the description, else def.
func (t Tags) gpsRef(name, def string) string {
	tag, ok := t[name]
	if !ok {
		return def
	}
	if seq, ok := tag.Value.([]any); ok && len(seq) > 0 {
		if s, ok := primitiveString(seq[0]); ok && s != "" {
			return s
		}
	}
	if tag.Description != "" {
		return tag.Description
	}
	return def
}

// dmsToDegrees converts a degrees/minutes/seconds triple to signed decimal
// degrees, negating for the southern and western hemispheres.
func dmsToDegrees(v any, ref string) (float64, bool) {
	seq, ok := v.([]any)
	if !ok || len(seq) != 3 {
		return 0, false
	}
	deg := ratFloat(seq[0])
	min := ratFloat(seq[1])
	sec := ratFloat(seq[2])

	dd := deg + min/60 + sec/3600
	if ref == "S" || ref == "W" {
		dd = -dd
	}
	return dd, true
}

// ratFloat parses one DMS element: a Rat, a [numerator, denominator] pair,
// or a plain number. Anything else parses to 0.
func ratFloat(v any) float64 {
	switch vv := v.(type) {
	case Rat:
		return vv.Float64()
	case []any:
		if len(vv) != 2 {
			return 0
		}
		num, okN := toNumber(vv[0])
		den, okD := toNumber(vv[1])
		if !okN || !okD {
			return 0
		}
		return num / den
	default:
		if f, ok := toNumber(v); ok {
			return f
		}
		return 0
	}
}
