// Package script drafts short-form video scripts from the content form.
// Generation is simulated: a fixed template is filled in after a delay.
package script

import (
	"fmt"
	"regexp"
	"strings"
)

// Tone is the narrator delivery style.
type Tone string

const (
	ToneInspiring    Tone = "Inspiring"
	ToneEducational  Tone = "Educational"
	ToneEntertaining Tone = "Entertaining"
	ToneBold         Tone = "Bold"
)

// Tones lists the tone options in display order.
var Tones = []Tone{ToneInspiring, ToneEducational, ToneEntertaining, ToneBold}

// Length is the target runtime of the short.
type Length string

const (
	Length30 Length = "30s"
	Length45 Length = "45s"
	Length60 Length = "60s"
)

// Lengths lists the runtime options in display order.
var Lengths = []Length{Length30, Length45, Length60}

// Values are the script form inputs.
type Values struct {
	Trend        string
	Tone         Tone
	Length       Length
	Audience     string
	CallToAction string
}

// DefaultValues returns the form's initial inputs.
func DefaultValues() Values {
	return Values{
		Trend:        "AI Productivity Hacks",
		Tone:         ToneEducational,
		Length:       Length45,
		Audience:     "Busy creators looking to automate their workflows",
		CallToAction: "Subscribe for the full automation playbook",
	}
}

// Validate reports missing required inputs.
func (v Values) Validate() error {
	if strings.TrimSpace(v.Trend) == "" {
		return fmt.Errorf("trend is required")
	}
	return nil
}

// Compose fills the script template with v. Sections are separated by a
// blank line.
func Compose(v Values) string {
	lines := []string{
		fmt.Sprintf("HOOK: \"What if your %s took 60 seconds to produce?\"", strings.ToLower(v.Trend)),
		fmt.Sprintf("SCENE 1 (%s): Rapid montage of creators overwhelmed with tabs.", v.Length),
		fmt.Sprintf("VOICE: %s narrator introduces the pain-point for %s.", v.Tone, strings.ToLower(v.Audience)),
		"SCENE 2: Split screen showing manual vs automated workflow charts.",
		"VISUAL: Dynamic overlays from LovoArt templates highlighting key metrics, color graded in primary hues.",
		"SCENE 3: On-screen walkthrough of the automation steps, with supertitles auto-captioned.",
		fmt.Sprintf("CTA: \"%s\"", v.CallToAction),
		"END CARD: Showcase cross-platform posting schedule + social handles.",
	}
	return strings.Join(lines, "\n\n")
}

var keywordPattern = regexp.MustCompile(`(?i)(AI|automation|hook|cta|scene|beat|visual|voice)`)

// Highlight passes every keyword occurrence in text through mark and returns
// the result. Matching is case-insensitive and not word-bounded.
func Highlight(text string, mark func(string) string) string {
	if text == "" || mark == nil {
		return text
	}
	return keywordPattern.ReplaceAllStringFunc(text, mark)
}
