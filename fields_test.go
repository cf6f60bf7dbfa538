// Copyright 2025 JohnDeved
// SPDX-License-Identifier: MIT

package metaview

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestCameraInfo(t *testing.T) {
	c := qt.New(t)

	c.Run("Full", func(c *qt.C) {
		tags := Tags{
			"Make":      {Value: "Canon"},
			"Model":     {Value: "EOS R5"},
			"LensModel": {Value: "RF 24-70mm F2.8"},
		}
		ci := tags.CameraInfo()
		c.Assert(ci.Camera, qt.Equals, "Canon EOS R5")
		c.Assert(ci.Lens, qt.Equals, "RF 24-70mm F2.8")
		c.Assert(ci.Subtitle, qt.Equals, "Canon EOS R5 • RF 24-70mm F2.8")
	})

	c.Run("ModelOnly", func(c *qt.C) {
		ci := Tags{"Model": {Value: "EOS R5"}}.CameraInfo()
		c.Assert(ci.Camera, qt.Equals, "EOS R5")
		c.Assert(ci.Subtitle, qt.Equals, "EOS R5")
	})

	c.Run("LensOnly", func(c *qt.C) {
		ci := Tags{"LensModel": {Value: "RF 50mm"}}.CameraInfo()
		c.Assert(ci.Camera, qt.Equals, "")
		c.Assert(ci.Subtitle, qt.Equals, "RF 50mm")
	})

	c.Run("Empty", func(c *qt.C) {
		c.Assert(Tags{}.CameraInfo().Subtitle, qt.Equals, "")
	})
}

func TestCameraStats(t *testing.T) {
	c := qt.New(t)

	tags := Tags{
		"FNumber":         {Description: "2.8", Value: NewRat(28, 10)},
		"ExposureTime":    {Description: "1/200", Value: NewRat(1, 200)},
		"ISOSpeedRatings": {Value: 100},
		"FocalLength":     {Description: "50 mm", Value: NewRat(50, 1)},
	}

	c.Assert(tags.CameraStats(), qt.DeepEquals, []Stat{
		{Label: "Aperture", Value: "f/2.8"},
		{Label: "Shutter", Value: "1/200s"},
		{Label: "ISO", Value: "ISO 100"},
		{Label: "Focal Length", Value: "50 mm"},
	})

	partial := Tags{"ISOSpeedRatings": {Value: 400}}
	c.Assert(partial.CameraStats(), qt.DeepEquals, []Stat{
		{Label: "ISO", Value: "ISO 400"},
	})

	c.Assert(Tags{}.CameraStats(), qt.IsNil)
}

func TestTechnicalSpecs(t *testing.T) {
	c := qt.New(t)

	tags := Tags{
		"PixelXDimension": {Value: 6000},
		"PixelYDimension": {Value: 4000},
	}
	file := &FileInfo{Size: 2621440, MIMEType: "image/jpeg"}

	c.Assert(tags.TechnicalSpecs(file), qt.Equals, "6000 x 4000 px • 2.50 MB JPEG")
	c.Assert(tags.TechnicalSpecs(nil), qt.Equals, "6000 x 4000 px")

	// One dimension alone is not enough for the dimensions segment.
	half := Tags{"PixelXDimension": {Value: 6000}}
	c.Assert(half.TechnicalSpecs(file), qt.Equals, "2.50 MB JPEG")

	c.Assert(Tags{}.TechnicalSpecs(nil), qt.Equals, "")

	// Unknown MIME type drops the extension but keeps the size.
	c.Assert(Tags{}.TechnicalSpecs(&FileInfo{Size: 1048576}), qt.Equals, "1.00 MB")
}

func TestCaptureInfo(t *testing.T) {
	c := qt.New(t)

	tags := Tags{
		"DateTimeOriginal": {Value: "2024:01:05 15:45:30"},
		"DateTime":         {Value: "2025:02:06 10:00:00"},
	}
	c.Assert(tags.CaptureInfo(), qt.Equals, "Taken on Jan 5, 2024, 3:45 PM")

	fallback := Tags{"DateTime": {Value: "2025:02:06 10:00:00"}}
	c.Assert(fallback.CaptureInfo(), qt.Equals, "Taken on Feb 6, 2025, 10:00 AM")

	c.Assert(Tags{}.CaptureInfo(), qt.Equals, "")
}

func TestEditInfo(t *testing.T) {
	c := qt.New(t)

	tags := Tags{
		"Software":   {Value: "Adobe Photoshop 25.0"},
		"ModifyDate": {Value: "2024:03:10 09:15:00"},
	}
	c.Assert(tags.EditInfo(), qt.Equals, "Edited with Adobe Photoshop 25.0 on Mar 10, 2024, 9:15 AM")

	softwareOnly := Tags{"Software": {Value: "GIMP"}}
	c.Assert(softwareOnly.EditInfo(), qt.Equals, "Edited with GIMP")

	dateOnly := Tags{"ModifyDate": {Value: "2024:03:10 09:15:00"}}
	c.Assert(dateOnly.EditInfo(), qt.Equals, "")
}

func TestDescriptionInfo(t *testing.T) {
	c := qt.New(t)

	c.Run("Full", func(c *qt.C) {
		tags := Tags{
			"ImageDescription": {Value: "A snowy mountain."},
			"Copyright":        {Value: "2024 Jane Doe"},
			"Artist":           {Value: "Jane Doe"},
		}
		di := tags.DescriptionInfo()
		c.Assert(di, qt.Equals, DescriptionInfo{
			Description: "A snowy mountain.",
			Copyright:   "2024 Jane Doe",
			Artist:      "Jane Doe",
		})
		c.Assert(di.HasContent(), qt.IsTrue)
	})

	c.Run("LowercaseFallback", func(c *qt.C) {
		tags := Tags{"description": {Value: "From XMP."}}
		c.Assert(tags.DescriptionInfo().Description, qt.Equals, "From XMP.")
	})

	c.Run("RejectedPrimaryFallsThrough", func(c *qt.C) {
		tags := Tags{
			"ImageDescription": {Value: `""`},
			"description":      {Value: "Usable."},
		}
		c.Assert(tags.DescriptionInfo().Description, qt.Equals, "Usable.")
	})

	c.Run("Empty", func(c *qt.C) {
		c.Assert(Tags{}.DescriptionInfo().HasContent(), qt.IsFalse)
	})
}

func TestHeadline(t *testing.T) {
	c := qt.New(t)

	tags := Tags{"Headline": {Value: "Summit at Dawn"}}
	c.Assert(tags.Headline(&FileInfo{Name: "img.jpg"}), qt.Equals, "Summit at Dawn")

	c.Assert(Tags{}.Headline(&FileInfo{Name: "img.jpg"}), qt.Equals, "img.jpg")
	c.Assert(Tags{}.Headline(nil), qt.Equals, "Unknown Image")
	c.Assert(Tags{}.Headline(&FileInfo{}), qt.Equals, "Unknown Image")
}

func TestDisplaySections(t *testing.T) {
	c := qt.New(t)

	c.Run("FilterAndCollapse", func(c *qt.C) {
		tags := Tags{
			"Flash":       {Description: "Fired", Value: int64(1)},
			"Image Width": {Value: 512},
		}
		sections := tags.DisplaySections(nil)
		c.Assert(sections, qt.DeepEquals, []DisplaySection{
			{
				Title: "Image Properties",
				Items: []DisplayItem{{Label: "Image Width", Value: "512", Icon: "image"}},
			},
			{
				Title: "Capture Settings",
				Items: []DisplayItem{{Label: "Flash", Value: "Fired", Icon: "zap"}},
			},
		})
	})

	c.Run("Empty", func(c *qt.C) {
		c.Assert(Tags{}.DisplaySections(nil), qt.IsNil)
	})

	c.Run("HeadlineSuppression", func(c *qt.C) {
		// The Editorial headline entry is dropped when it repeats the page
		// headline, but shown when the page headline comes from elsewhere.
		tags := Tags{"Headline": {Value: "Summit at Dawn"}}
		c.Assert(tags.DisplaySections(nil), qt.IsNil)

		tags["Credit"] = Tag{Value: "Wire Service"}
		sections := tags.DisplaySections(nil)
		c.Assert(sections, qt.HasLen, 1)
		c.Assert(sections[0].Items, qt.DeepEquals, []DisplayItem{
			{Label: "Credit", Value: "Wire Service", Icon: "user"},
		})
	})

	c.Run("SerialFallback", func(c *qt.C) {
		tags := Tags{"InternalSerialNumber": {Value: "XYZ123"}}
		sections := tags.DisplaySections(nil)
		c.Assert(sections, qt.HasLen, 1)
		c.Assert(sections[0].Title, qt.Equals, "Camera & Lens Details")
		c.Assert(sections[0].Items[0], qt.Equals, DisplayItem{
			Label: "Camera Serial", Value: "XYZ123", Icon: "camera",
		})

		// The primary tag wins when both resolve.
		tags["SerialNumber"] = Tag{Value: "ABC999"}
		sections = tags.DisplaySections(nil)
		c.Assert(sections[0].Items[0].Value, qt.Equals, "ABC999")
	})
}

func TestJoinNonEmpty(t *testing.T) {
	c := qt.New(t)

	c.Assert(joinNonEmpty(" • ", "a", "", "b"), qt.Equals, "a • b")
	c.Assert(joinNonEmpty(" • ", "", ""), qt.Equals, "")
}
