// Copyright 2025 JohnDeved
// SPDX-License-Identifier: MIT

package metaview

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRat(t *testing.T) {
	c := qt.New(t)

	c.Run("Normalize", func(c *qt.C) {
		c.Assert(NewRat(6, 9), qt.Equals, Rat{num: 2, den: 3})
		c.Assert(NewRat(13, -3), qt.Equals, Rat{num: -13, den: 3})
		c.Assert(NewRat(-4, -8), qt.Equals, Rat{num: 1, den: 2})
		c.Assert(NewRat(0, 5), qt.Equals, Rat{num: 0, den: 1})
		c.Assert(NewRat(3, 0), qt.Equals, Rat{num: 3, den: 0})
	})

	c.Run("String", func(c *qt.C) {
		c.Assert(NewRat(1, 200).String(), qt.Equals, "1/200")
		c.Assert(NewRat(4, 1).String(), qt.Equals, "4")
		c.Assert(NewRat(10, 5).String(), qt.Equals, "2")
		c.Assert(NewRat(-1, 3).String(), qt.Equals, "-1/3")
	})

	c.Run("Float64", func(c *qt.C) {
		c.Assert(NewRat(1, 4).Float64(), qt.Equals, 0.25)
		c.Assert(NewRat(5, 1).Float64(), qt.Equals, 5.0)
	})

	c.Run("MarshalText", func(c *qt.C) {
		b, err := NewRat(1, 200).MarshalText()
		c.Assert(err, qt.IsNil)
		c.Assert(string(b), qt.Equals, "1/200")
	})
}

func TestToNumber(t *testing.T) {
	c := qt.New(t)

	for _, test := range []struct {
		in   any
		want float64
	}{
		{NewRat(1, 4), 0.25},
		{3.5, 3.5},
		{float32(2), 2},
		{int(7), 7},
		{int64(-9), -9},
		{uint16(100), 100},
		{"2.8", 2.8},
		{" 42 ", 42},
	} {
		got, ok := toNumber(test.in)
		c.Assert(ok, qt.IsTrue, qt.Commentf("input %v", test.in))
		c.Assert(got, qt.Equals, test.want)
	}

	for _, in := range []any{"not a number", "", nil, struct{}{}, []any{1}} {
		_, ok := toNumber(in)
		c.Assert(ok, qt.IsFalse, qt.Commentf("input %v", in))
	}
}

func TestFormatFloat(t *testing.T) {
	c := qt.New(t)

	c.Assert(formatFloat(2.8), qt.Equals, "2.8")
	c.Assert(formatFloat(20), qt.Equals, "20")
	c.Assert(formatFloat(0.5), qt.Equals, "0.5")
}

func TestPrintableString(t *testing.T) {
	c := qt.New(t)

	c.Assert(printableString(" Canon\x00 EOS \x01"), qt.Equals, "Canon EOS")
	c.Assert(printableString("\x00\x00"), qt.Equals, "")
}

func TestTrimBytesNulls(t *testing.T) {
	c := qt.New(t)

	c.Assert(trimBytesNulls([]byte("\x00\x00abc\x00")), qt.DeepEquals, []byte("abc"))
	c.Assert(trimBytesNulls([]byte("abc")), qt.DeepEquals, []byte("abc"))
	c.Assert(trimBytesNulls([]byte("\x00\x00")), qt.IsNil)
}
