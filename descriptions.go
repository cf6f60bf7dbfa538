// Copyright 2025 JohnDeved
// SPDX-License-Identifier: MIT

package metaview

// Rendered descriptions for the enum-valued EXIF tags the formatted view
// displays. Values follow the EXIF 2.3 enumerations; unmapped values stay
// undescribed and resolve to their raw number.
var exifValueDescriptions = map[string]map[int64]string{
	"ExposureProgram":  {0: "Not defined", 1: "Manual", 2: "Normal program", 3: "Aperture priority", 4: "Shutter priority", 5: "Creative program", 6: "Action program", 7: "Portrait mode", 8: "Landscape mode"},
	"MeteringMode":     {1: "Average", 2: "CenterWeightedAverage", 3: "Spot", 4: "MultiSpot", 5: "Pattern", 6: "Partial", 255: "Other"},
	"Flash":            {0x0: "Flash did not fire", 0x1: "Flash fired", 0x5: "Strobe return light not detected", 0x7: "Strobe return light detected", 0x9: "Flash fired, compulsory flash mode", 0xd: "Flash fired, compulsory flash mode, return light not detected", 0xf: "Flash fired, compulsory flash mode, return light detected", 0x10: "Flash did not fire, compulsory flash mode", 0x18: "Flash did not fire, auto mode", 0x19: "Flash fired, auto mode", 0x1d: "Flash fired, auto mode, return light not detected", 0x1f: "Flash fired, auto mode, return light detected", 0x20: "No flash function", 0x41: "Flash fired, red-eye reduction mode", 0x45: "Flash fired, red-eye reduction mode, return light not detected", 0x47: "Flash fired, red-eye reduction mode, return light detected", 0x49: "Flash fired, compulsory flash mode, red-eye reduction mode", 0x59: "Flash fired, auto mode, red-eye reduction mode", 0x5d: "Flash fired, auto mode, return light not detected, red-eye reduction mode", 0x5f: "Flash fired, auto mode, return light detected, red-eye reduction mode"},
	"WhiteBalance":     {0: "Auto white balance", 1: "Manual white balance"},
	"ColorSpace":       {1: "sRGB", 2: "Adobe RGB", 65535: "Uncalibrated"},
	"Contrast":         {0: "Normal", 1: "Soft", 2: "Hard"},
	"Saturation":       {0: "Normal", 1: "Low saturation", 2: "High saturation"},
	"Sharpness":        {0: "Normal", 1: "Soft", 2: "Hard"},
	"SceneCaptureType": {0: "Standard", 1: "Landscape", 2: "Portrait", 3: "Night scene"},
	"CustomRendered":   {0: "Normal process", 1: "Custom process"},
	"ExposureMode":     {0: "Auto exposure", 1: "Manual exposure", 2: "Auto bracket"},
	"SensingMethod":    {1: "Not defined", 2: "One-chip color area sensor", 3: "Two-chip color area sensor", 4: "Three-chip color area sensor", 5: "Color sequential area sensor", 7: "Trilinear sensor", 8: "Color sequential linear sensor"},
	"GainControl":      {0: "None", 1: "Low gain up", 2: "High gain up", 3: "Low gain down", 4: "High gain down"},
	"LightSource":      {0: "Unknown", 1: "Daylight", 2: "Fluorescent", 3: "Tungsten (incandescent light)", 4: "Flash", 9: "Fine weather", 10: "Cloudy weather", 11: "Shade"},
	"Orientation":      {1: "Horizontal (normal)", 2: "Mirror horizontal", 3: "Rotate 180", 4: "Mirror vertical", 5: "Mirror horizontal and rotate 270 CW", 6: "Rotate 90 CW", 7: "Mirror horizontal and rotate 90 CW", 8: "Rotate 270 CW"},
	"ResolutionUnit":   {1: "None", 2: "inches", 3: "cm"},
}

var gpsRefDescriptions = map[string]map[string]string{
	"GPSLatitudeRef":  {"N": "North latitude", "S": "South latitude"},
	"GPSLongitudeRef": {"E": "East longitude", "W": "West longitude"},
}

// describeEXIF renders the human readable description for a decoded EXIF
// value, where one is worth rendering: decimal apertures, rational shutter
// times, "NN mm" focal lengths and the enum tables above.
func describeEXIF(name string, value any) string {
	switch name {
	case "FNumber":
		if r, ok := value.(Rat); ok && r.Den() != 0 {
			return formatFloat(r.Float64())
		}
	case "ExposureTime":
		if r, ok := value.(Rat); ok {
			return r.String()
		}
	case "FocalLength":
		if r, ok := value.(Rat); ok && r.Den() != 0 {
			return formatFloat(r.Float64()) + " mm"
		}
	case "FocalLengthIn35mmFilm":
		if n, ok := toNumber(value); ok && n != 0 {
			return formatFloat(n) + " mm"
		}
	case "ExposureBiasValue", "MaxApertureValue", "DigitalZoomRatio", "SubjectDistance", "ShutterSpeedValue", "ApertureValue", "BrightnessValue":
		if r, ok := value.(Rat); ok && r.Den() != 0 {
			return formatFloat(r.Float64())
		}
	case "GPSLatitudeRef", "GPSLongitudeRef":
		if s, ok := value.(string); ok {
			return gpsRefDescriptions[name][s]
		}
	}

	if m, ok := exifValueDescriptions[name]; ok {
		if n, ok := toNumber(value); ok {
			return m[int64(n)]
		}
	}
	return ""
}
