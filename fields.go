// Copyright 2025 JohnDeved
// SPDX-License-Identifier: MIT

package metaview

import (
	"fmt"
	"strings"
)

// CameraInfo is the camera/lens identity block shown at the top of the
// formatted view.
type CameraInfo struct {
	Camera   string
	Lens     string
	Subtitle string
}

// CameraInfo builds the camera and lens display strings from the Make,
// Model and LensModel tags.
func (t Tags) CameraInfo() CameraInfo {
	var parts []string
	if maker, ok := t.Resolve("Make"); ok {
		parts = append(parts, maker)
	}
	if model, ok := t.Resolve("Model"); ok {
		parts = append(parts, model)
	}
	camera := strings.Join(parts, " ")
	lens, _ := t.Resolve("LensModel")

	return CameraInfo{
		Camera:   camera,
		Lens:     lens,
		Subtitle: joinNonEmpty(" • ", camera, lens),
	}
}

// Stat is one of the key stat cards (aperture, shutter, ISO, focal length).
type Stat struct {
	Label string
	Value string
}

// CameraStats returns the stat cards whose source tags resolve, in display
// order.
func (t Tags) CameraStats() []Stat {
	var stats []Stat
	if v, ok := t.Resolve("FNumber"); ok {
		stats = append(stats, Stat{Label: "Aperture", Value: "f/" + v})
	}
	if v, ok := t.Resolve("ExposureTime"); ok {
		stats = append(stats, Stat{Label: "Shutter", Value: v + "s"})
	}
	if v, ok := t.Resolve("ISOSpeedRatings"); ok {
		stats = append(stats, Stat{Label: "ISO", Value: "ISO " + v})
	}
	if v, ok := t.Resolve("FocalLength"); ok {
		stats = append(stats, Stat{Label: "Focal Length", Value: v})
	}
	return stats
}

// TechnicalSpecs builds the "{width} x {height} px • {size} MB {EXT}"
// summary. The dimensions segment needs both pixel dimension tags; the
// file segment needs a FileInfo. Absent segments are omitted, and the
// result is "" when nothing is available.
func (t Tags) TechnicalSpecs(file *FileInfo) string {
	var dimensions string
	w, okW := t.Resolve("PixelXDimension")
	h, okH := t.Resolve("PixelYDimension")
	if okW && okH {
		dimensions = fmt.Sprintf("%s x %s px", w, h)
	}

	var fileSegment string
	if file != nil {
		mb := float64(file.Size) / (1024 * 1024)
		fileSegment = strings.TrimSpace(fmt.Sprintf("%.2f MB %s", mb, file.extension()))
	}

	return joinNonEmpty(" • ", dimensions, fileSegment)
}

// CaptureInfo builds the "Taken on ..." summary from DateTimeOriginal,
// falling back to DateTime. Returns "" when neither resolves.
func (t Tags) CaptureInfo() string {
	taken, ok := t.Resolve("DateTimeOriginal")
	if !ok {
		taken, ok = t.Resolve("DateTime")
	}
	if !ok {
		return ""
	}
	if formatted := FormatDate(taken); formatted != "" {
		return "Taken on " + formatted
	}
	return ""
}

// EditInfo builds the "Edited with ..." summary from the Software tag,
// appending the ModifyDate when it resolves. Returns "" when Software is
// absent.
func (t Tags) EditInfo() string {
	software, ok := t.Resolve("Software")
	if !ok {
		return ""
	}
	s := "Edited with " + software
	if modified, ok := t.Resolve("ModifyDate"); ok {
		if formatted := FormatDate(modified); formatted != "" {
			s += " on " + formatted
		}
	}
	return s
}

// DescriptionInfo is the description and rights bundle.
type DescriptionInfo struct {
	Description string
	Copyright   string
	Artist      string
}

// HasContent reports whether any of the three fields resolved.
func (d DescriptionInfo) HasContent() bool {
	return d.Description != "" || d.Copyright != "" || d.Artist != ""
}

// DescriptionInfo resolves ImageDescription (with the decoder's lowercase
// "description" as fallback), Copyright and Artist.
func (t Tags) DescriptionInfo() DescriptionInfo {
	desc, ok := t.Resolve("ImageDescription")
	if !ok {
		desc, _ = t.Resolve("description")
	}
	copyright, _ := t.Resolve("Copyright")
	artist, _ := t.Resolve("Artist")

	return DescriptionInfo{
		Description: desc,
		Copyright:   copyright,
		Artist:      artist,
	}
}

// Headline returns the display headline: the Headline tag if it resolves,
// else the file name, else "Unknown Image".
func (t Tags) Headline(file *FileInfo) string {
	if v, ok := t.Resolve("Headline"); ok {
		return v
	}
	if file != nil && file.Name != "" {
		return file.Name
	}
	return "Unknown Image"
}

// gridItem is one configured entry of a display group: a label, the tag it
// reads, and an icon key for the presentation layer. fallbackTag, when
// set, is consulted if the primary tag does not resolve.
type gridItem struct {
	label       string
	tag         string
	fallbackTag string
	icon        string
}

// gridGroup is a titled set of grid items.
type gridGroup struct {
	title string
	items []gridItem
}

// displayGroups configures the grid-style metadata sections of the
// formatted view. Every group follows the same contract: items whose tag
// does not resolve are dropped, and a group with no surviving items is not
// rendered at all.
var displayGroups = []gridGroup{
	{
		title: "Image Properties",
		items: []gridItem{
			{label: "Image Width", tag: "Image Width", icon: "image"},
			{label: "Image Height", tag: "Image Height", icon: "image"},
			{label: "Bit Depth", tag: "Bit Depth", icon: "palette"},
			{label: "Color Type", tag: "Color Type", icon: "palette"},
			{label: "Compression", tag: "Compression", icon: "sliders"},
			{label: "Filter", tag: "Filter", icon: "focus"},
			{label: "Interlace", tag: "Interlace", icon: "sliders"},
		},
	},
	{
		title: "Capture Settings",
		items: []gridItem{
			{label: "Exposure Program", tag: "ExposureProgram", icon: "sliders"},
			{label: "Metering Mode", tag: "MeteringMode", icon: "crosshair"},
			{label: "Flash", tag: "Flash", icon: "zap"},
			{label: "White Balance", tag: "WhiteBalance", icon: "sun"},
		},
	},
	{
		title: "Editorial",
		items: []gridItem{
			{label: "Instructions", tag: "Instructions", icon: "file-text"},
			{label: "Credit", tag: "Credit", icon: "user"},
			{label: "Source", tag: "Source", icon: "globe"},
			{label: "Headline", tag: "Headline", icon: "type"},
		},
	},
	{
		title: "Image Quality & Processing",
		items: []gridItem{
			{label: "Color Space", tag: "ColorSpace", icon: "palette"},
			{label: "Contrast", tag: "Contrast", icon: "contrast"},
			{label: "Saturation", tag: "Saturation", icon: "sparkle"},
			{label: "Sharpness", tag: "Sharpness", icon: "focus"},
			{label: "Scene Type", tag: "SceneCaptureType", icon: "camera"},
			{label: "Custom Rendered", tag: "CustomRendered", icon: "sliders"},
		},
	},
	{
		title: "Camera & Lens Details",
		items: []gridItem{
			{label: "Camera Serial", tag: "SerialNumber", fallbackTag: "InternalSerialNumber", icon: "camera"},
			{label: "Lens Serial", tag: "LensSerialNumber", icon: "aperture"},
			{label: "35mm Focal Length", tag: "FocalLengthIn35mmFilm", icon: "focus"},
			{label: "Sensing Method", tag: "SensingMethod", icon: "crosshair"},
			{label: "Owner Name", tag: "OwnerName", icon: "user"},
			{label: "Lens Make", tag: "LensMake", icon: "type"},
		},
	},
	{
		title: "Advanced Exposure",
		items: []gridItem{
			{label: "Exposure Mode", tag: "ExposureMode", icon: "sliders"},
			{label: "Exposure Bias", tag: "ExposureBiasValue", icon: "sun"},
			{label: "Max Aperture", tag: "MaxApertureValue", icon: "aperture"},
			{label: "Subject Distance", tag: "SubjectDistance", icon: "focus"},
			{label: "Digital Zoom", tag: "DigitalZoomRatio", icon: "image"},
			{label: "Gain Control", tag: "GainControl", icon: "zap"},
		},
	},
}

// DisplayItem is a resolved grid entry handed to the presentation layer.
type DisplayItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// DisplaySection is a titled group of resolved grid entries.
type DisplaySection struct {
	Title string        `json:"title"`
	Items []DisplayItem `json:"items"`
}

// DisplaySections resolves the configured display groups against the bag.
// Items that do not resolve are dropped in place, and groups with no
// surviving items are omitted. The Editorial headline entry is suppressed
// when it merely repeats the page headline.
func (t Tags) DisplaySections(file *FileInfo) []DisplaySection {
	headline := t.Headline(file)

	var sections []DisplaySection
	for _, group := range displayGroups {
		var items []DisplayItem
		for _, item := range group.items {
			v, ok := t.Resolve(item.tag)
			if !ok && item.fallbackTag != "" {
				v, ok = t.Resolve(item.fallbackTag)
			}
			if !ok {
				continue
			}
			if item.tag == "Headline" && v == headline {
				continue
			}
			items = append(items, DisplayItem{Label: item.label, Value: v, Icon: item.icon})
		}
		if len(items) == 0 {
			continue
		}
		sections = append(sections, DisplaySection{Title: group.title, Items: items})
	}
	return sections
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
