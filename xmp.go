// Copyright 2025 JohnDeved
// SPDX-License-Identifier: MIT

package metaview

import (
	"bytes"
	"encoding/xml"
	"unicode"
	"unicode/utf8"
)

var xmpSkipNamespaces = map[string]bool{
	"xmlns": true,
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#": true,
	"http://purl.org/dc/elements/1.1/":            true,
}

type xmpmeta struct {
	XMLName xml.Name
	RDF     xmpRDF `xml:"RDF"`
}

type xmpRDF struct {
	Descriptions []xmpDescription `xml:"Description"`
}

// Note: only a subset of XMP is handled here, but a very common subset:
// simple attributes (CreatorTool, ModifyDate, Headline, Credit, ...) plus
// the Dublin Core list children.
type xmpDescription struct {
	Attrs       []xml.Attr `xml:",any,attr"`
	Creator     xmpSeq     `xml:"creator"`
	Description xmpAlt     `xml:"description"`
	Rights      xmpAlt     `xml:"rights"`
	Title       xmpAlt     `xml:"title"`
	Subject     xmpBag     `xml:"subject"`
}

type xmpAlt struct {
	Alt struct {
		Items []string `xml:"li"`
	} `xml:"Alt"`
}

type xmpSeq struct {
	Seq struct {
		Items []string `xml:"li"`
	} `xml:"Seq"`
}

type xmpBag struct {
	Bag struct {
		Items []string `xml:"li"`
	} `xml:"Bag"`
}

var (
	xmpPacketStart = []byte("<x:xmpmeta")
	xmpPacketEnd   = []byte("</x:xmpmeta>")
)

// decodeXMPPacket makes a best-effort scan for an embedded XMP packet in
// the raw file data and merges its tags into the bag. EXIF names already
// present are not overwritten.
func decodeXMPPacket(data []byte, tags Tags, warnf func(string, ...any)) {
	start := bytes.Index(data, xmpPacketStart)
	if start == -1 {
		return
	}
	end := bytes.Index(data[start:], xmpPacketEnd)
	if end == -1 {
		return
	}
	packet := data[start : start+end+len(xmpPacketEnd)]

	var meta xmpmeta
	if err := xml.Unmarshal(packet, &meta); err != nil {
		warnf("decoding XMP packet: %v", err)
		return
	}

	for _, desc := range meta.RDF.Descriptions {
		for _, attr := range desc.Attrs {
			if xmpSkipNamespaces[attr.Name.Space] || attr.Name.Space == "" {
				continue
			}
			tags.add(firstUpper(attr.Name.Local), Tag{Value: attr.Value})
		}

		// Dublin Core children keep their lowercase names; that is the
		// shape the derived-field fallbacks expect (e.g. "description").
		addXMPItems(tags, "creator", desc.Creator.Seq.Items)
		addXMPItems(tags, "description", desc.Description.Alt.Items)
		addXMPItems(tags, "rights", desc.Rights.Alt.Items)
		addXMPItems(tags, "title", desc.Title.Alt.Items)
		addXMPItems(tags, "subject", desc.Subject.Bag.Items)
	}
}

func addXMPItems(tags Tags, name string, items []string) {
	switch len(items) {
	case 0:
	case 1:
		// This is how ExifTool flattens single-item lists.
		tags.add(name, Tag{Value: items[0]})
	default:
		seq := make([]any, len(items))
		for i, item := range items {
			seq[i] = item
		}
		tags.add(name, Tag{Value: seq})
	}
}

func firstUpper(s string) string {
	if s == "" {
		return ""
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}
