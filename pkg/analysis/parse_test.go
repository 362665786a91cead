package analysis

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"punchline/pkg/apperr"
)

const canonical = `1. Setup: A cat walks into a bar.

2. Punchline: It orders a catnip martini, shaken not stirred.

3. Style Elements: Observational framing with a deadpan button.

4. Strengths: Tight wordplay and a clear image.

5. Improvements: Trim the setup so the turn arrives sooner.

6. Feedback Suggestions: 1. Try a shorter setup
2. Add a callback
`

func TestParseCanonical(t *testing.T) {
	rec, err := Parse(canonical)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := Payload{
		Setup:               "A cat walks into a bar.",
		Punchline:           "It orders a catnip martini, shaken not stirred.",
		StyleElements:       "Observational framing with a deadpan button.",
		Strengths:           "Tight wordplay and a clear image.",
		Improvements:        "Trim the setup so the turn arrives sooner.",
		FeedbackSuggestions: "1. Try a shorter setup\n2. Add a callback",
		Suggestions:         []string{"Try a shorter setup", "Add a callback"},
	}
	if diff := cmp.Diff(want, rec.Payload()); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
	if missing := rec.Missing(); len(missing) != 0 {
		t.Fatalf("expected no missing sections, got %v", missing)
	}
	if rec.Raw() != canonical {
		t.Fatal("raw text must be kept verbatim")
	}
}

func TestParseDeterministic(t *testing.T) {
	inputs := []string{
		canonical,
		"Setup: a\nPunchline: b\nnoise",
		"**Strengths:** quick\n\nRating: 7/10\n\n- Feedback Suggestions: go darker",
	}
	for _, in := range inputs {
		first, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		second, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		a, _ := json.Marshal(first)
		b, _ := json.Marshal(second)
		if string(a) != string(b) {
			t.Fatalf("non-deterministic output for %q:\n%s\n%s", in, a, b)
		}
	}
}

func TestParseMissingFeedbackSuggestions(t *testing.T) {
	raw := strings.SplitN(canonical, "\n\n6.", 2)[0]
	rec, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := rec.Section(FeedbackSuggestions); got != Unavailable {
		t.Fatalf("expected sentinel, got %q", got)
	}
	if got := rec.Suggestions(); len(got) != 0 {
		t.Fatalf("expected no suggestions, got %v", got)
	}
	if diff := cmp.Diff([]Section{FeedbackSuggestions}, rec.Missing()); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}
}

func TestParseImprovementsSynonyms(t *testing.T) {
	for _, label := range []string{"Potential Improvements", "Improvements", "5) POTENTIAL IMPROVEMENTS", "Areas for Improvement"} {
		rec, err := Parse("Setup: x\n\n" + label + ": make it darker")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if got := rec.Section(Improvements); got != "make it darker" {
			t.Fatalf("label %q: expected improvements content, got %q", label, got)
		}
	}
}

func TestParseSingleSpacedFallback(t *testing.T) {
	raw := "Setup: A dog at the DMV.\n" +
		"Punchline: It was the only one who could stay.\n" +
		"Style Elements: Wordplay.\n" +
		"Strengths: Short.\n" +
		"Potential Improvements: Sharper verb.\n" +
		"Feedback Suggestions:\n" +
		"1. Make it more absurd\n" +
		"2) Shorten it\n" +
		"- Add a tag"

	rec, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := rec.Section(Punchline); got != "It was the only one who could stay." {
		t.Fatalf("unexpected punchline %q", got)
	}
	want := []string{"Make it more absurd", "Shorten it", "Add a tag"}
	if diff := cmp.Diff(want, rec.Suggestions()); diff != "" {
		t.Fatalf("suggestions mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMarkdownAndHeadings(t *testing.T) {
	raw := "Here's my breakdown:\n\n" +
		"**Setup:** The cat owns a laptop.\n\n" +
		"### Punchline\nIt only uses it to sit on.\n\n" +
		"__Style Elements__:\nDeadpan.\n\n" +
		"Overall a solid bit."

	rec, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := rec.Section(Setup); got != "The cat owns a laptop." {
		t.Fatalf("unexpected setup %q", got)
	}
	if got := rec.Section(Punchline); got != "It only uses it to sit on." {
		t.Fatalf("unexpected punchline %q", got)
	}
	if got := rec.Section(StyleElements); got != "Deadpan." {
		t.Fatalf("unexpected style elements %q", got)
	}
	for _, s := range []Section{Strengths, Improvements, FeedbackSuggestions} {
		if got := rec.Section(s); got != Unavailable {
			t.Fatalf("%s: expected sentinel, got %q", s, got)
		}
	}
}

func TestParsePreambleBeforeSingleSpacedBlock(t *testing.T) {
	raw := "Sure! Here is the analysis:\n1. Setup: A\n2. Punchline: B\n\nHope this helps."
	rec, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Section(Setup) != "A" || rec.Section(Punchline) != "B" {
		t.Fatalf("unexpected sections: %+v", rec.Payload())
	}
}

func TestParseIgnoresUnknownAndKeepsLastDuplicate(t *testing.T) {
	raw := "Setup: first\n\nRating: 7/10\n\nSetup: second\n\nno label here"
	rec, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := rec.Section(Setup); got != "second" {
		t.Fatalf("expected last duplicate to win, got %q", got)
	}
	if got := len(rec.Missing()); got != 5 {
		t.Fatalf("expected 5 missing sections, got %d", got)
	}
}

func TestParseCRLF(t *testing.T) {
	rec, err := Parse("Setup: A\r\n\r\nPunchline: B\r\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rec.Section(Setup) != "A" || rec.Section(Punchline) != "B" {
		t.Fatalf("unexpected sections: %+v", rec.Payload())
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "  \n\t "} {
		if _, err := Parse(in); !errors.Is(err, apperr.ErrInvalidInput) {
			t.Fatalf("Parse(%q): expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestParseNoLabelsDegrades(t *testing.T) {
	rec, err := Parse("This joke is fine, I guess.")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := len(rec.Missing()); got != len(Sections) {
		t.Fatalf("expected every section missing, got %d", got)
	}
}

func TestSuggestions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"numbered", "1. Try a shorter setup\n2. Add a callback\n", []string{"Try a shorter setup", "Add a callback"}},
		{"parens and blanks", "1) One\n\n   \n2) Two", []string{"One", "Two"}},
		{"bullets", "- One\n* Two\n• Three", []string{"One", "Two", "Three"}},
		{"plain", "Go darker", []string{"Go darker"}},
		{"sentinel", Unavailable, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Suggestions(tt.content)); diff != "" {
				t.Fatalf("Suggestions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecordJSON(t *testing.T) {
	rec, err := Parse("Style Elements: wordplay")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got["styleElements"] != "wordplay" {
		t.Fatalf("unexpected styleElements %v", got["styleElements"])
	}
	if got["setup"] != Unavailable {
		t.Fatalf("expected sentinel for setup, got %v", got["setup"])
	}
	if s, ok := got["suggestions"].([]any); !ok || len(s) != 0 {
		t.Fatalf("expected empty suggestions array, got %v", got["suggestions"])
	}
}

func TestZeroRecord(t *testing.T) {
	var rec Record
	if rec.Section(Setup) != Unavailable {
		t.Fatal("zero record should report the sentinel")
	}
	if rec.Suggestions() == nil {
		t.Fatal("suggestions should never be nil")
	}
}

func TestParseNestedAndTrailingLabels(t *testing.T) {
	strengthsNested := "4. Strengths:\n- Setup: economical\n- Punchline: lands on the pun"
	tests := []struct {
		name      string
		raw       string
		strengths string
		want      []string
	}{
		{
			name:      "labelled bullets under a section",
			raw:       strings.Replace(canonical, "4. Strengths: Tight wordplay and a clear image.", strengthsNested, 1),
			strengths: "- Setup: economical\n- Punchline: lands on the pun",
			want:      []string{"Try a shorter setup", "Add a callback"},
		},
		{
			name:      "numbered labels repeating opened sections",
			raw:       strings.Replace(canonical, "4. Strengths: Tight wordplay and a clear image.", "4. Strengths:\n1. Setup: economical\n2. Punchline: lands", 1),
			strengths: "1. Setup: economical\n2. Punchline: lands",
			want:      []string{"Try a shorter setup", "Add a callback"},
		},
		{
			name:      "unknown numbered section after feedback suggestions",
			raw:       canonical + "\n7. Overall Rating: 8/10",
			strengths: "Tight wordplay and a clear image.",
			want:      []string{"Try a shorter setup", "Add a callback"},
		},
		{
			name:      "unknown label directly after suggestion lines",
			raw:       "Strengths: Short.\nFeedback Suggestions:\n1. Go darker\n2. Add a callback\nOverall Rating: 8/10",
			strengths: "Short.",
			want:      []string{"Go darker", "Add a callback"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := rec.Section(Strengths); got != tt.strengths {
				t.Fatalf("unexpected strengths %q", got)
			}
			if diff := cmp.Diff(tt.want, rec.Suggestions()); diff != "" {
				t.Fatalf("suggestions mismatch (-want +got):\n%s", diff)
			}
			if !strings.HasPrefix(tt.raw, "Strengths") {
				if rec.Section(Setup) != "A cat walks into a bar." || rec.Section(Punchline) != "It orders a catnip martini, shaken not stirred." {
					t.Fatalf("nested labels leaked into other sections: %+v", rec.Payload())
				}
				if len(rec.Missing()) != 0 {
					t.Fatalf("expected no missing sections, got %v", rec.Missing())
				}
			}
		})
	}
}
