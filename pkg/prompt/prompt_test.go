package prompt

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"punchline/pkg/analysis"
	"punchline/pkg/apperr"
	"punchline/pkg/persona"
)

func seinfeld(t *testing.T) persona.Persona {
	t.Helper()
	p, err := persona.Default().Get("jerry-seinfeld")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	return p
}

func TestGeneration(t *testing.T) {
	p := seinfeld(t)
	got, err := Generation(p, "  cats  ")
	if err != nil {
		t.Fatalf("Generation: %v", err)
	}
	if !strings.Contains(got.User, "cats") || strings.Contains(got.User, "  cats") {
		t.Fatalf("topic should be trimmed into the user prompt: %q", got.User)
	}
	if !strings.Contains(got.System, p.Name) || !strings.Contains(got.System, p.Style) {
		t.Fatalf("system prompt misses identity or style: %q", got.System)
	}
	if !strings.Contains(got.System, strings.Join(p.Examples, ExampleSeparator)) {
		t.Fatalf("system prompt misses joined examples: %q", got.System)
	}
	if got.MaxTokens != 150 || got.Temperature != 0.7 {
		t.Fatalf("unexpected sampling %d/%v", got.MaxTokens, got.Temperature)
	}

	again, _ := Generation(p, "cats")
	if again != got {
		t.Fatal("Generation is not deterministic")
	}
}

func TestGenerationRequiresTopic(t *testing.T) {
	for _, topic := range []string{"", "   ", "\n\t"} {
		_, err := Generation(seinfeld(t), topic)
		if !errors.Is(err, apperr.ErrInvalidInput) {
			t.Fatalf("Generation(%q): expected ErrInvalidInput, got %v", topic, err)
		}
		if msg := apperr.Message(err); msg != "Topic is required" {
			t.Fatalf("unexpected message %q", msg)
		}
	}
}

func TestRevision(t *testing.T) {
	p := seinfeld(t)
	got, err := Revision(p, "Why did the cat sit on the laptop?", "make it shorter", "")
	if err != nil {
		t.Fatalf("Revision: %v", err)
	}
	for _, want := range []string{"Why did the cat sit on the laptop?", "make it shorter", p.Style} {
		if !strings.Contains(got.User, want) {
			t.Fatalf("user prompt misses %q: %q", want, got.User)
		}
	}
	if !strings.Contains(got.System, p.Examples[0]) {
		t.Fatal("system prompt misses examples")
	}

	withTopic, _ := Revision(p, "joke", "feedback", "cats")
	if !strings.Contains(withTopic.User, "about cats") {
		t.Fatalf("topic context missing: %q", withTopic.User)
	}
}

func TestRevisionRequiresFields(t *testing.T) {
	tests := []struct {
		joke, feedback string
	}{
		{"", "shorter"},
		{"  ", "shorter"},
		{"a joke", ""},
		{"a joke", " \n"},
	}
	for _, tt := range tests {
		if _, err := Revision(seinfeld(t), tt.joke, tt.feedback, "cats"); !errors.Is(err, apperr.ErrInvalidInput) {
			t.Fatalf("Revision(%q, %q): expected ErrInvalidInput, got %v", tt.joke, tt.feedback, err)
		}
	}
}

func TestAnalysisListsSectionsInOrder(t *testing.T) {
	p := seinfeld(t)
	got, err := Analysis(p, "Why did the cat sit on the laptop?")
	if err != nil {
		t.Fatalf("Analysis: %v", err)
	}
	last := -1
	for i, s := range analysis.Sections {
		marker := fmt.Sprintf("%d. %s:", i+1, s.Label())
		at := strings.Index(got.User, marker)
		if at < 0 {
			t.Fatalf("prompt misses %q", marker)
		}
		if at < last {
			t.Fatalf("%q is out of order", marker)
		}
		last = at
	}
	if !strings.Contains(got.User, p.Name+"'s style") {
		t.Fatal("style hint should name the persona")
	}
	if got.MaxTokens != 500 || got.Temperature != 0.7 {
		t.Fatalf("unexpected sampling %d/%v", got.MaxTokens, got.Temperature)
	}
	if _, err := Analysis(p, "  "); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank joke, got %v", err)
	}
}

var placeholderRX = regexp.MustCompile(`\[[^\]]*\]`)

// A model that follows the format exactly must parse without gaps.
func TestAnalysisLabelsRoundTrip(t *testing.T) {
	got, err := Analysis(seinfeld(t), "Why did the cat sit on the laptop?")
	if err != nil {
		t.Fatalf("Analysis: %v", err)
	}
	_, format, _ := strings.Cut(got.User, "\n\n1. ")
	format = "1. " + format
	reply := placeholderRX.ReplaceAllString(format, "filled in")

	rec, err := analysis.Parse(reply)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if missing := rec.Missing(); len(missing) != 0 {
		t.Fatalf("sections not recognized: %v\n%s", missing, reply)
	}
	for _, s := range analysis.Sections {
		if rec.Section(s) != "filled in" {
			t.Fatalf("%s: unexpected content %q", s, rec.Section(s))
		}
	}
}
