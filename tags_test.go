// Copyright 2025 JohnDeved
// SPDX-License-Identifier: MIT

package metaview

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestTagResolve(t *testing.T) {
	c := qt.New(t)

	resolve := func(tag Tag) string {
		s, _ := tag.Resolve()
		return s
	}

	c.Run("Empty", func(c *qt.C) {
		_, ok := Tag{}.Resolve()
		c.Assert(ok, qt.IsFalse)
	})

	c.Run("Primitives", func(c *qt.C) {
		c.Assert(resolve(Tag{Value: "Canon"}), qt.Equals, "Canon")
		c.Assert(resolve(Tag{Value: 42}), qt.Equals, "42")
		c.Assert(resolve(Tag{Value: int64(100)}), qt.Equals, "100")
		c.Assert(resolve(Tag{Value: 2.8}), qt.Equals, "2.8")
		c.Assert(resolve(Tag{Value: uint16(7)}), qt.Equals, "7")
	})

	c.Run("RejectionFilter", func(c *qt.C) {
		for _, v := range []string{"", "   ", "Unknown", `""`} {
			_, ok := Tag{Value: v}.Resolve()
			c.Assert(ok, qt.IsFalse, qt.Commentf("value %q", v))
		}
	})

	c.Run("DescriptionPreferred", func(c *qt.C) {
		c.Assert(resolve(Tag{Description: " Canon EOS R5 ", Value: "raw"}), qt.Equals, "Canon EOS R5")
	})

	c.Run("RejectedDescriptionFallsToValue", func(c *qt.C) {
		c.Assert(resolve(Tag{Description: "Unknown", Value: "fallback"}), qt.Equals, "fallback")
		c.Assert(resolve(Tag{Description: `""`, Value: 3}), qt.Equals, "3")
	})

	c.Run("Sequences", func(c *qt.C) {
		c.Assert(resolve(Tag{Value: []any{"a", 1, struct{}{}, 2.5}}), qt.Equals, "a, 1, 2.5")

		_, ok := Tag{Value: []any{}}.Resolve()
		c.Assert(ok, qt.IsFalse)

		_, ok = Tag{Value: []any{struct{}{}, nil}}.Resolve()
		c.Assert(ok, qt.IsFalse)
	})

	c.Run("UnsupportedShape", func(c *qt.C) {
		_, ok := Tag{Value: struct{}{}}.Resolve()
		c.Assert(ok, qt.IsFalse)
		_, ok = Tag{Value: map[string]int{"a": 1}}.Resolve()
		c.Assert(ok, qt.IsFalse)
	})
}

func TestTagsResolve(t *testing.T) {
	c := qt.New(t)

	tags := Tags{
		"Make":  {Value: "Canon"},
		"Model": {Value: "Unknown"},
	}

	v, ok := tags.Resolve("Make")
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, "Canon")

	_, ok = tags.Resolve("Model")
	c.Assert(ok, qt.IsFalse)

	_, ok = tags.Resolve("Missing")
	c.Assert(ok, qt.IsFalse)

	var nilTags Tags
	_, ok = nilTags.Resolve("Make")
	c.Assert(ok, qt.IsFalse)
	c.Assert(nilTags.IsZero(), qt.IsTrue)
}

func TestTagsAdd(t *testing.T) {
	c := qt.New(t)

	tags := Tags{}
	tags.add("Make", Tag{Value: "Canon"})
	tags.add("Make", Tag{Value: "Nikon"}) // first writer wins
	tags.add("", Tag{Value: "nameless"})
	tags.add("Empty", Tag{})

	c.Assert(tags, qt.HasLen, 1)
	v, _ := tags.Resolve("Make")
	c.Assert(v, qt.Equals, "Canon")
}

func TestTagsSortedNames(t *testing.T) {
	c := qt.New(t)

	tags := Tags{
		"Model": {Value: "R5"},
		"Make":  {Value: "Canon"},
		"ISO":   {Value: 100},
	}
	c.Assert(tags.SortedNames(), qt.DeepEquals, []string{"ISO", "Make", "Model"})
}

func TestFileInfoExtension(t *testing.T) {
	c := qt.New(t)

	c.Assert(FileInfo{MIMEType: "image/jpeg"}.extension(), qt.Equals, "JPEG")
	c.Assert(FileInfo{MIMEType: "image/png"}.extension(), qt.Equals, "PNG")
	c.Assert(FileInfo{MIMEType: "weird"}.extension(), qt.Equals, "")
	c.Assert(FileInfo{}.extension(), qt.Equals, "")
}
