// Copyright 2025 JohnDeved
// SPDX-License-Identifier: MIT

package metaview

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// http://ftp-osl.osuosl.org/pub/libpng/documents/pngext-1.5.0.html
// PNG text chunks are where Stable Diffusion tools store their generation
// parameters: A1111 writes a tEXt/iTXt keyword "parameters", ComfyUI
// writes "prompt" and "workflow".

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func isPNG(data []byte) bool {
	return bytes.HasPrefix(data, pngSignature)
}

var pngColorTypes = map[byte]string{
	0: "Grayscale",
	2: "RGB",
	3: "Palette",
	4: "Grayscale with Alpha",
	6: "RGB with Alpha",
}

// scanPNGChunks walks the chunk stream, collecting IHDR header properties
// and all text chunks into the bag. It returns the payload of an eXIf
// chunk when one is present, for the EXIF decoder to pick up. Chunk CRCs
// are skipped, not verified.
func scanPNGChunks(data []byte, tags Tags, warnf func(string, ...any)) []byte {
	var exifPayload []byte

	off := len(pngSignature)
	for off+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[off : off+4]))
		typ := string(data[off+4 : off+8])
		start := off + 8
		end := start + length
		if length < 0 || end > len(data) {
			warnf("truncated PNG chunk %q", typ)
			break
		}
		chunk := data[start:end]

		switch typ {
		case "IHDR":
			scanIHDR(chunk, tags)
		case "tEXt":
			keyword, text, ok := splitPNGKeyword(chunk)
			if ok {
				tags.add(keyword, Tag{Value: latin1String(text)})
			}
		case "zTXt":
			keyword, rest, ok := splitPNGKeyword(chunk)
			if ok && len(rest) > 1 {
				// One byte compression method, then a zlib stream.
				text, err := inflate(rest[1:])
				if err != nil {
					warnf("inflating zTXt %q: %v", keyword, err)
					break
				}
				tags.add(keyword, Tag{Value: latin1String(text)})
			}
		case "iTXt":
			keyword, text, ok := splitITXT(chunk, warnf)
			if ok {
				tags.add(keyword, Tag{Value: text})
			}
		case "eXIf":
			exifPayload = chunk
		case "IEND":
			return exifPayload
		}

		off = end + 4 // skip CRC
	}

	return exifPayload
}

// scanIHDR records the image header properties the raw view displays. The
// tag names carry spaces, matching how text-chunk decoders label them.
func scanIHDR(chunk []byte, tags Tags) {
	if len(chunk) < 13 {
		return
	}
	tags.add("Image Width", Tag{Value: int64(binary.BigEndian.Uint32(chunk[0:4]))})
	tags.add("Image Height", Tag{Value: int64(binary.BigEndian.Uint32(chunk[4:8]))})
	tags.add("Bit Depth", Tag{Value: int64(chunk[8])})
	tags.add("Color Type", Tag{Value: int64(chunk[9]), Description: pngColorTypes[chunk[9]]})
	if chunk[10] == 0 {
		tags.add("Compression", Tag{Value: int64(0), Description: "Deflate/Inflate"})
	}
	if chunk[11] == 0 {
		tags.add("Filter", Tag{Value: int64(0), Description: "Adaptive"})
	}
	switch chunk[12] {
	case 0:
		tags.add("Interlace", Tag{Value: int64(0), Description: "Noninterlaced"})
	case 1:
		tags.add("Interlace", Tag{Value: int64(1), Description: "Adam7 Interlace"})
	}
}

// splitPNGKeyword splits a text chunk into its Latin-1 keyword and the
// remainder after the NUL separator.
func splitPNGKeyword(chunk []byte) (string, []byte, bool) {
	keyword, rest, ok := bytes.Cut(chunk, []byte{0})
	if !ok || len(keyword) == 0 {
		return "", nil, false
	}
	return latin1String(keyword), rest, true
}

// splitITXT decodes an iTXt chunk: keyword, compression flag and method,
// language tag, translated keyword, then UTF-8 text.
func splitITXT(chunk []byte, warnf func(string, ...any)) (string, string, bool) {
	keyword, rest, ok := splitPNGKeyword(chunk)
	if !ok || len(rest) < 2 {
		return "", "", false
	}
	compressed := rest[0] == 1
	rest = rest[2:]

	// Skip language tag and translated keyword.
	for i := 0; i < 2; i++ {
		_, r, ok := bytes.Cut(rest, []byte{0})
		if !ok {
			return "", "", false
		}
		rest = r
	}

	if compressed {
		text, err := inflate(rest)
		if err != nil {
			warnf("inflating iTXt %q: %v", keyword, err)
			return "", "", false
		}
		return keyword, string(text), true
	}
	return keyword, string(rest), true
}

func latin1String(b []byte) string {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

func inflate(b []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
