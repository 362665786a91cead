package analysis

// Section is one of the six fixed categories of a joke critique.
type Section int

const (
	Setup Section = iota
	Punchline
	StyleElements
	Strengths
	Improvements
	FeedbackSuggestions

	sectionCount = iota
)

// Sections lists every section in prompt and display order.
var Sections = [sectionCount]Section{
	Setup,
	Punchline,
	StyleElements,
	Strengths,
	Improvements,
	FeedbackSuggestions,
}

var sectionLabels = [sectionCount]string{
	Setup:               "Setup",
	Punchline:           "Punchline",
	StyleElements:       "Style Elements",
	Strengths:           "Strengths",
	Improvements:        "Potential Improvements",
	FeedbackSuggestions: "Feedback Suggestions",
}

var sectionKeys = [sectionCount]string{
	Setup:               "setup",
	Punchline:           "punchline",
	StyleElements:       "styleElements",
	Strengths:           "strengths",
	Improvements:        "improvements",
	FeedbackSuggestions: "feedbackSuggestions",
}

// Label is the heading the analysis prompt asks the model to emit.
func (s Section) Label() string {
	if !s.valid() {
		return ""
	}
	return sectionLabels[s]
}

// Key is the JSON field name of the section in an analysis payload.
func (s Section) Key() string {
	if !s.valid() {
		return ""
	}
	return sectionKeys[s]
}

func (s Section) String() string { return s.Key() }

func (s Section) valid() bool { return s >= 0 && s < sectionCount }

// synonyms maps a normalized label (ASCII lowercase, letters only) to its
// section. Models drift between "Improvements" and "Potential Improvements",
// and the older coaching prompt asked for "Suggested feedback for the
// comedian", so each section accepts a handful of spellings.
var synonyms = map[string]Section{
	"setup":        Setup,
	"thesetup":     Setup,
	"premise":      Setup,
	"setuppremise": Setup,
	"premisesetup": Setup,

	"punchline":    Punchline,
	"thepunchline": Punchline,

	"styleelements":     StyleElements,
	"stylisticelements": StyleElements,
	"styleelementsused": StyleElements,
	"comedicstyle":      StyleElements,
	"styleanalysis":     StyleElements,
	"keystyleelements":  StyleElements,

	"strengths": Strengths,
	"strength":  Strengths,

	"improvements":          Improvements,
	"improvement":           Improvements,
	"potentialimprovements": Improvements,
	"potentialimprovement":  Improvements,
	"suggestedimprovements": Improvements,
	"areasforimprovement":   Improvements,
	"weaknesses":            Improvements,

	"feedbacksuggestions":             FeedbackSuggestions,
	"feedbacksuggestion":              FeedbackSuggestions,
	"suggestedfeedback":               FeedbackSuggestions,
	"suggestedfeedbackforthecomedian": FeedbackSuggestions,
	"feedbackideas":                   FeedbackSuggestions,
}

// Lookup maps a raw heading such as "5. Potential Improvements" to its
// section.
func Lookup(label string) (Section, bool) {
	s, ok := synonyms[normalizeLabel(label)]
	return s, ok
}

// normalizeLabel lowercases ASCII letters and drops every other byte, which
// also removes ordinal prefixes like "1." or "3)".
func normalizeLabel(label string) string {
	out := make([]byte, 0, len(label))
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		}
	}
	return string(out)
}
