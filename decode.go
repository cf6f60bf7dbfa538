// Copyright 2025 JohnDeved
// SPDX-License-Identifier: MIT

package metaview

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/rwcarlsen/goexif/tiff"
	"golang.org/x/text/encoding/unicode"
)

func init() {
	// Register manufacturer-specific note parsers so vendor blocks don't
	// abort decoding.
	exif.RegisterParsers(mknote.All...)
}

// DecodeOptions contains the options for Decode.
type DecodeOptions struct {
	// Warnf is called for each recoverable oddity found while decoding.
	// If nil, warnings are dropped.
	Warnf func(format string, args ...any)
}

// Decode reads image data from r and builds the metadata bag: EXIF tags,
// PNG text chunks and header properties, and XMP packet attributes.
//
// A file without any metadata is not an error; the result is simply an
// empty bag. Only a failed read of r itself is reported as an error.
func Decode(r io.Reader, opts DecodeOptions) (Tags, error) {
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}

	tags := Tags{}

	if isPNG(data) {
		exifPayload := scanPNGChunks(data, tags, opts.Warnf)
		if len(exifPayload) > 0 {
			decodeEXIF(exifPayload, tags, opts.Warnf)
		}
	} else {
		decodeEXIF(data, tags, opts.Warnf)
	}

	decodeXMPPacket(data, tags, opts.Warnf)

	return tags, nil
}

// DecodeFile decodes the file at path and derives its FileInfo from the
// file system.
func DecodeFile(path string, opts DecodeOptions) (Tags, FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, FileInfo{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, FileInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}

	mimeType, _, _ := strings.Cut(mime.TypeByExtension(filepath.Ext(path)), ";")
	info := FileInfo{
		Name:     filepath.Base(path),
		Size:     st.Size(),
		MIMEType: strings.TrimSpace(mimeType),
	}

	tags, err := Decode(f, opts)
	if err != nil {
		return nil, info, err
	}
	return tags, info, nil
}

// decodeEXIF decodes an EXIF block (a JPEG/TIFF stream or a raw TIFF
// payload from a PNG eXIf chunk) into the bag. Absence of EXIF data is a
// warning, not an error.
func decodeEXIF(data []byte, tags Tags, warnf func(string, ...any)) {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		warnf("no EXIF data: %v", err)
		return
	}
	if err := x.Walk(&exifCollector{tags: tags}); err != nil {
		warnf("walking EXIF tags: %v", err)
	}
}

// exifCollector converts each decoded EXIF field into a Tag.
type exifCollector struct {
	tags Tags
}

func (c *exifCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	n := string(name)
	if tag == nil || n == "MakerNote" || strings.HasPrefix(n, "Thumb") {
		return nil
	}
	c.tags.add(n, convertEXIFTag(n, tag))
	return nil
}

func convertEXIFTag(name string, tag *tiff.Tag) Tag {
	var t Tag

	switch tag.Format() {
	case tiff.StringVal:
		if s, err := tag.StringVal(); err == nil {
			t.Value = printableString(s)
		}
	case tiff.IntVal:
		if tag.Count == 1 {
			if v, err := tag.Int(0); err == nil {
				t.Value = int64(v)
			}
		} else {
			var seq []any
			for i := 0; i < int(tag.Count); i++ {
				v, err := tag.Int(i)
				if err != nil {
					break
				}
				seq = append(seq, int64(v))
			}
			t.Value = seq
		}
	case tiff.FloatVal:
		if v, err := tag.Float(0); err == nil {
			t.Value = v
		}
	case tiff.RatVal:
		if tag.Count == 1 {
			if num, den, err := tag.Rat2(0); err == nil {
				t.Value = NewRat(num, den)
			}
		} else {
			var seq []any
			for i := 0; i < int(tag.Count); i++ {
				num, den, err := tag.Rat2(i)
				if err != nil {
					break
				}
				seq = append(seq, NewRat(num, den))
			}
			t.Value = seq
		}
	default:
		if name == "UserComment" {
			t.Value = decodeUserComment(tag.Val)
		}
	}

	t.Description = describeEXIF(name, t.Value)

	// Hemisphere references are exposed as a one-element sequence, the
	// shape the GPS reconstructor and most tag decoders agree on.
	if name == "GPSLatitudeRef" || name == "GPSLongitudeRef" {
		if s, ok := t.Value.(string); ok {
			t.Value = []any{s}
		}
	}

	return t
}

// decodeUserComment strips the 8-byte character code header of the EXIF
// UserComment field and decodes the remainder. This is where JPEG files
// carry embedded AI generation parameters.
func decodeUserComment(b []byte) string {
	if len(b) < 8 {
		return printableString(string(trimBytesNulls(b)))
	}
	code, rest := b[:8], b[8:]
	switch {
	case bytes.HasPrefix(code, []byte("ASCII")):
		return strings.TrimSpace(string(trimBytesNulls(rest)))
	case bytes.HasPrefix(code, []byte("UNICODE")):
		dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		if out, err := dec.Bytes(rest); err == nil {
			return strings.TrimSpace(string(trimBytesNulls(out)))
		}
		return ""
	case bytes.Equal(code, make([]byte, 8)):
		// Undefined character code; treat as ASCII.
		return strings.TrimSpace(string(trimBytesNulls(rest)))
	default:
		return printableString(string(trimBytesNulls(b)))
	}
}
