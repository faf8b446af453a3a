package vllm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kbukum/vllm/util"
)

// presetEntry pairs a parameter bundle with a short description.
type presetEntry struct {
	params      Params
	description string
}

// presets are named parameter bundles tuned for common generation styles.
// They are supplied to Complete and Stream as per-call overrides; the
// client itself never looks presets up.
var presets = map[string]presetEntry{
	"conservative": {
		description: "Low randomness, short focused answers",
		params: Params{
			Temperature:       util.Ptr(0.1),
			TopP:              util.Ptr(0.8),
			TopK:              util.Ptr(10),
			RepetitionPenalty: util.Ptr(1.1),
			MaxTokens:         util.Ptr(512),
		},
	},
	"balanced": {
		description: "General-purpose default trade-off",
		params: Params{
			Temperature:       util.Ptr(0.7),
			TopP:              util.Ptr(0.9),
			TopK:              util.Ptr(50),
			RepetitionPenalty: util.Ptr(1.1),
			FrequencyPenalty:  util.Ptr(0.1),
			MaxTokens:         util.Ptr(1024),
		},
	},
	"creative": {
		description: "High randomness for open-ended writing",
		params: Params{
			Temperature:       util.Ptr(1.2),
			TopP:              util.Ptr(0.95),
			TopK:              util.Ptr(100),
			RepetitionPenalty: util.Ptr(1.05),
			PresencePenalty:   util.Ptr(0.2),
			MaxTokens:         util.Ptr(2048),
		},
	},
	"precise": {
		description: "Near-deterministic output for factual tasks",
		params: Params{
			Temperature:       util.Ptr(0.01),
			TopP:              util.Ptr(0.7),
			TopK:              util.Ptr(5),
			RepetitionPenalty: util.Ptr(1.2),
			FrequencyPenalty:  util.Ptr(0.3),
			MaxTokens:         util.Ptr(1024),
		},
	},
	"diverse": {
		description: "Strong anti-repetition for varied output",
		params: Params{
			Temperature:       util.Ptr(0.8),
			TopP:              util.Ptr(0.9),
			TopK:              util.Ptr(80),
			RepetitionPenalty: util.Ptr(1.3),
			FrequencyPenalty:  util.Ptr(0.5),
			PresencePenalty:   util.Ptr(0.4),
			MaxTokens:         util.Ptr(1536),
		},
	},
	"beam_search": {
		description: "Beam search over three candidates",
		params: Params{
			Temperature:   util.Ptr(0.6),
			UseBeamSearch: util.Ptr(true),
			BestOf:        util.Ptr(3),
			LengthPenalty: util.Ptr(1.2),
			EarlyStopping: util.Ptr(true),
			MaxTokens:     util.Ptr(1024),
		},
	},
}

// Preset returns a copy of the named parameter bundle, suitable as the
// overrides argument of Complete or Stream.
func Preset(name string) (*Params, error) {
	entry, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("vllm: unknown preset %q (available: %s)", name, strings.Join(Presets(), ", "))
	}
	p := entry.params
	return &p, nil
}

// Presets returns the available preset names, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetDescription returns a one-line description of the named preset, or
// an empty string if the preset does not exist.
func PresetDescription(name string) string {
	return presets[name].description
}
