// Copyright 2025 JohnDeved
// SPDX-License-Identifier: MIT

// Command metaview prints the embedded metadata of image files: a
// formatted summary, the raw tag bag, or the parsed AI generation
// parameters. Nothing leaves the machine; files are read locally and
// printed to stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	metaview "github.com/JohnDeved/image-metadata-viewer"
)

var (
	jsonOut = flag.Bool("json", false, "dump the raw tag bag and derived fields as JSON")
	rawView = flag.Bool("raw", false, "print every tag with its resolved value")
	aiView  = flag.Bool("ai", false, "print only the AI generation parameters")
	verbose = flag.Bool("v", false, "log decoder warnings")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: metaview [flags] <image file>...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	exitCode := 0
	for _, path := range flag.Args() {
		if err := run(path); err != nil {
			logrus.Errorf("%s: %v", path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func run(path string) error {
	tags, info, err := metaview.DecodeFile(path, metaview.DecodeOptions{
		Warnf: logrus.Debugf,
	})
	if err != nil {
		return err
	}

	if tags.IsZero() {
		logrus.Warnf("%s: no EXIF metadata found", path)
	}

	switch {
	case *jsonOut:
		return printJSON(tags, info)
	case *rawView:
		printRaw(tags)
	case *aiView:
		printAI(tags)
	default:
		printFormatted(tags, info)
	}
	return nil
}

func printJSON(tags metaview.Tags, info metaview.FileInfo) error {
	gps, hasGPS := tags.GPS()
	ai, hasAI := tags.AIParameters()

	out := struct {
		File     metaview.FileInfo          `json:"file"`
		Tags     metaview.Tags              `json:"tags"`
		Sections []metaview.DisplaySection  `json:"sections,omitempty"`
		GPS      *metaview.GPSCoordinate    `json:"gps,omitempty"`
		AI       *metaview.AIGenerationData `json:"ai,omitempty"`
	}{
		File:     info,
		Tags:     tags,
		Sections: tags.DisplaySections(&info),
	}
	if hasGPS {
		out.GPS = &gps
	}
	if hasAI {
		out.AI = &ai
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printRaw(tags metaview.Tags) {
	for _, name := range tags.SortedNames() {
		if v, ok := tags.Resolve(name); ok {
			fmt.Printf("%-32s %s\n", name, v)
		}
	}
}

func printAI(tags metaview.Tags) {
	ai, ok := tags.AIParameters()
	if !ok {
		fmt.Println("No AI generation parameters found.")
		return
	}
	if ai.Prompt != "" {
		fmt.Printf("Prompt:\n  %s\n", ai.Prompt)
	}
	if ai.NegativePrompt != "" {
		fmt.Printf("Negative prompt:\n  %s\n", ai.NegativePrompt)
	}
	if len(ai.Settings) > 0 {
		fmt.Println("Settings:")
		for _, p := range ai.Settings {
			fmt.Printf("  %-12s %s\n", p.Name, p.Value)
		}
	}
}

func printFormatted(tags metaview.Tags, info metaview.FileInfo) {
	fmt.Println(tags.Headline(&info))

	if ci := tags.CameraInfo(); ci.Subtitle != "" {
		fmt.Println(ci.Subtitle)
	}
	fmt.Println()

	for _, s := range tags.CameraStats() {
		fmt.Printf("%-14s %s\n", s.Label, s.Value)
	}

	if v := tags.CaptureInfo(); v != "" {
		fmt.Println(v)
	}
	if v := tags.TechnicalSpecs(&info); v != "" {
		fmt.Println(v)
	}
	if v := tags.EditInfo(); v != "" {
		fmt.Println(v)
	}

	if di := tags.DescriptionInfo(); di.HasContent() {
		fmt.Println()
		if di.Description != "" {
			fmt.Printf("%q\n", di.Description)
		}
		if di.Copyright != "" {
			fmt.Printf("© %s\n", di.Copyright)
		}
		if di.Artist != "" {
			fmt.Printf("by %s\n", di.Artist)
		}
	}

	for _, section := range tags.DisplaySections(&info) {
		fmt.Printf("\n%s\n", section.Title)
		for _, item := range section.Items {
			fmt.Printf("  %-20s %s\n", item.Label, item.Value)
		}
	}

	if gps, ok := tags.GPS(); ok {
		fmt.Printf("\nLocation: %f, %f (%s/%s)\n", gps.Lat, gps.Long, gps.LatRef, gps.LongRef)
	}

	if ai, ok := tags.AIParameters(); ok {
		fmt.Println()
		fmt.Println("AI Generation")
		printAIData(ai)
	}
}

func printAIData(ai metaview.AIGenerationData) {
	if ai.Prompt != "" {
		fmt.Printf("  Prompt: %s\n", ai.Prompt)
	}
	if ai.NegativePrompt != "" {
		fmt.Printf("  Negative: %s\n", ai.NegativePrompt)
	}
	for _, p := range ai.Settings {
		fmt.Printf("  %-12s %s\n", p.Name, p.Value)
	}
}
