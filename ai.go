// Copyright 2025 JohnDeved
// SPDX-License-Identifier: MIT

package metaview

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Param is one generation setting, e.g. {Name: "Steps", Value: "20"}.
type Param struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AIGenerationData is the normalized record for embedded AI generation
// parameters. Settings keep their order of first appearance; duplicate
// names overwrite the earlier value in place.
type AIGenerationData struct {
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negativePrompt"`
	Settings       []Param `json:"settings"`
}

// Setting looks up a setting by name.
func (d AIGenerationData) Setting(name string) (string, bool) {
	for _, p := range d.Settings {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

func (d *AIGenerationData) setSetting(name, value string) {
	for i, p := range d.Settings {
		if p.Name == name {
			d.Settings[i].Value = value
			return
		}
	}
	d.Settings = append(d.Settings, Param{Name: name, Value: value})
}

// aiParameterTags are the tag names AI tools embed their parameters under,
// in lookup order.
var aiParameterTags = []string{"parameters", "prompt", "workflow", "UserComment"}

// AIParameters finds and parses the first AI parameter tag in the bag.
func (t Tags) AIParameters() (AIGenerationData, bool) {
	for _, name := range aiParameterTags {
		if raw, ok := t.Resolve(name); ok {
			if data, ok := ParseAIParameters(raw); ok {
				return data, true
			}
		}
	}
	return AIGenerationData{}, false
}

// ParseAIParameters parses a raw embedded parameter text in either of the
// two dialects in the wild: a ComfyUI JSON workflow graph, or the flat
// A1111/WebUI "prompt / Negative prompt: / settings line" text.
//
// Text starting with '{' is first tried as a workflow; if it is not valid
// JSON that is not an error, the flat-text parse runs instead. At most one
// dialect contributes the result.
func ParseAIParameters(raw string) (AIGenerationData, bool) {
	if raw == "" {
		return AIGenerationData{}, false
	}

	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		if data, ok := parseComfyWorkflow(raw); ok {
			return data, true
		}
	}

	return parseParameterText(raw), true
}

// comfyNode is one node of a ComfyUI workflow graph.
type comfyNode struct {
	Inputs    map[string]any `json:"inputs"`
	ClassType string         `json:"class_type"`
}

// Recognized node class sets. Prompt text is taken single-hop only; a
// reroute node between the sampler and the text encoder yields "".
var (
	comfySamplerClasses = map[string]bool{"KSampler": true, "KSamplerAdvanced": true}
	comfyLoaderClasses  = map[string]bool{"CheckpointLoaderSimple": true, "CheckpointLoader": true}
	comfyEncodeClasses  = map[string]bool{"CLIPTextEncode": true, "CLIPTextEncodeSDXL": true}
)

func parseComfyWorkflow(raw string) (AIGenerationData, bool) {
	var workflow map[string]comfyNode
	if err := json.Unmarshal([]byte(raw), &workflow); err != nil {
		return AIGenerationData{}, false
	}

	var data AIGenerationData

	sampler, found := findComfyNode(workflow, comfySamplerClasses)
	if found {
		inputs := sampler.Inputs
		for _, s := range []struct{ input, label string }{
			{"seed", "Seed"},
			{"steps", "Steps"},
			{"cfg", "CFG scale"},
			{"sampler_name", "Sampler"},
			{"scheduler", "Scheduler"},
			{"denoise", "Denoise"},
		} {
			if v, ok := jsonScalarString(inputs[s.input]); ok {
				data.setSetting(s.label, v)
			}
		}

		if loader, ok := followComfyRef(workflow, inputs["model"]); ok && comfyLoaderClasses[loader.ClassType] {
			if v, ok := jsonScalarString(loader.Inputs["ckpt_name"]); ok {
				data.setSetting("Model", v)
			}
		}

		if encoder, ok := followComfyRef(workflow, inputs["positive"]); ok && comfyEncodeClasses[encoder.ClassType] {
			data.Prompt, _ = jsonScalarString(encoder.Inputs["text"])
		}
		if encoder, ok := followComfyRef(workflow, inputs["negative"]); ok && comfyEncodeClasses[encoder.ClassType] {
			data.NegativePrompt, _ = jsonScalarString(encoder.Inputs["text"])
		}
	}

	if latent, ok := findComfyNode(workflow, map[string]bool{"EmptyLatentImage": true}); ok {
		w, okW := jsonScalarString(latent.Inputs["width"])
		h, okH := jsonScalarString(latent.Inputs["height"])
		if okW && okH {
			data.setSetting("Size", w+"x"+h)
		}
	}

	return data, true
}

// findComfyNode returns the first node whose class is in classes, scanning
// node ids in numeric order so repeated parses agree.
func findComfyNode(workflow map[string]comfyNode, classes map[string]bool) (comfyNode, bool) {
	for _, id := range sortedNodeIDs(workflow) {
		if node := workflow[id]; classes[node.ClassType] {
			return node, true
		}
	}
	return comfyNode{}, false
}

// followComfyRef resolves a [nodeID, outputIndex] input reference to its
// target node.
func followComfyRef(workflow map[string]comfyNode, ref any) (comfyNode, bool) {
	seq, ok := ref.([]any)
	if !ok || len(seq) == 0 {
		return comfyNode{}, false
	}
	id, ok := jsonScalarString(seq[0])
	if !ok {
		return comfyNode{}, false
	}
	node, ok := workflow[id]
	return node, ok
}

func sortedNodeIDs(workflow map[string]comfyNode) []string {
	ids := make([]string, 0, len(workflow))
	for id := range workflow {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.ParseFloat(ids[i], 64)
		b, errB := strconv.ParseFloat(ids[j], 64)
		if errA == nil && errB == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})
	return ids
}

// jsonScalarString stringifies a decoded JSON scalar. Zero numbers, empty
// strings and non-scalars report false, so absent or zero-valued inputs
// are omitted rather than defaulted.
func jsonScalarString(v any) (string, bool) {
	switch vv := v.(type) {
	case string:
		if vv == "" {
			return "", false
		}
		return vv, true
	case float64:
		if vv == 0 {
			return "", false
		}
		return formatFloat(vv), true
	case bool:
		if !vv {
			return "", false
		}
		return "true", true
	default:
		return "", false
	}
}

// negativePromptMarker splits an A1111 parameter text into the prompt and
// the negative-prompt-plus-settings region.
const negativePromptMarker = "Negative prompt:"

func parseParameterText(raw string) AIGenerationData {
	var data AIGenerationData
	var settingsLine string

	promptPart, rest, hasNegative := strings.Cut(raw, negativePromptMarker)
	data.Prompt = strings.TrimSpace(promptPart)

	if hasNegative {
		remaining := rest
		if body, last, ok := cutSettingsLine(remaining); ok {
			data.NegativePrompt = strings.TrimSpace(body)
			settingsLine = last
		} else {
			data.NegativePrompt = strings.TrimSpace(remaining)
		}
	} else {
		if body, last, ok := cutSettingsLine(data.Prompt); ok {
			data.Prompt = strings.TrimSpace(body)
			settingsLine = last
		}
	}

	for _, item := range strings.Split(settingsLine, ", ") {
		name, value, ok := strings.Cut(item, ":")
		if !ok {
			continue
		}
		data.setSetting(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	return data
}

// cutSettingsLine sniffs for a trailing settings line: the text after the
// last newline, when it contains "Steps:" or "Model:". This is a
// heuristic, not a grammar; a prompt whose last line happens to contain
// those substrings is claimed as settings. That matches the established
// A1111 convention and is kept as-is.
func cutSettingsLine(s string) (body, settingsLine string, ok bool) {
	idx := strings.LastIndexByte(s, '\n')
	if idx < 0 {
		return s, "", false
	}
	last := s[idx+1:]
	if !strings.Contains(last, "Steps:") && !strings.Contains(last, "Model:") {
		return s, "", false
	}
	return s[:idx], strings.TrimSpace(last), true
}
