package analysis

import (
	"encoding/json"
	"slices"
)

// Record is the structured form of one analysis response. Build it with
// Parse; it is not modified afterwards.
type Record struct {
	sections    [sectionCount]string
	suggestions []string
	raw         string
}

// Section returns the content of s, or Unavailable.
func (r Record) Section(s Section) string {
	if !s.valid() || r.sections[s] == "" {
		return Unavailable
	}
	return r.sections[s]
}

// Raw is the unmodified model output the record was parsed from.
func (r Record) Raw() string { return r.raw }

// Suggestions is the feedback-suggestion list in source order.
func (r Record) Suggestions() []string {
	if r.suggestions == nil {
		return []string{}
	}
	return slices.Clone(r.suggestions)
}

// Missing lists the sections that fell back to Unavailable.
func (r Record) Missing() []Section {
	var out []Section
	for _, s := range Sections {
		if r.Section(s) == Unavailable {
			out = append(out, s)
		}
	}
	return out
}

// Payload is the wire shape of a Record.
type Payload struct {
	Setup               string   `json:"setup" jsonschema_description:"Setup or premise of the joke"`
	Punchline           string   `json:"punchline" jsonschema_description:"Punchline and how it lands"`
	StyleElements       string   `json:"styleElements" jsonschema_description:"Elements of the comedian's style the joke uses"`
	Strengths           string   `json:"strengths" jsonschema_description:"What works in the joke"`
	Improvements        string   `json:"improvements" jsonschema_description:"Ways the joke could be improved"`
	FeedbackSuggestions string   `json:"feedbackSuggestions" jsonschema_description:"Feedback the user could give to modify the joke, as returned by the model"`
	Suggestions         []string `json:"suggestions" jsonschema_description:"Feedback suggestions split into individual items, in display order"`
}

func (r Record) Payload() Payload {
	return Payload{
		Setup:               r.Section(Setup),
		Punchline:           r.Section(Punchline),
		StyleElements:       r.Section(StyleElements),
		Strengths:           r.Section(Strengths),
		Improvements:        r.Section(Improvements),
		FeedbackSuggestions: r.Section(FeedbackSuggestions),
		Suggestions:         r.Suggestions(),
	}
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Payload())
}
