package prompt

import (
	"fmt"
	"strings"

	"punchline/pkg/analysis"
	"punchline/pkg/apperr"
	"punchline/pkg/persona"
)

// ExampleSeparator joins persona examples inside a prompt.
const ExampleSeparator = " | "

// Prompt is a rendered system/user message pair plus the sampling settings
// the completion call should use.
type Prompt struct {
	System      string
	User        string
	MaxTokens   int64
	Temperature float64
}

const (
	jokeMaxTokens     = 150
	analysisMaxTokens = 500
	temperature       = 0.7
)

const personaSystem = `You are %[1]s. Create jokes in your unique style: %[2]s

%[3]s

Here are some examples of %[1]s's style: %[4]s

Reply with the joke only. No preamble, no quotation marks, no explanation.`

const analysisSystem = `You are a comedy expert who specializes in analyzing jokes and providing constructive feedback.`

// Generation renders the prompt asking persona p for a joke about topic.
func Generation(p persona.Persona, topic string) (Prompt, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Prompt{}, apperr.Invalid("Topic is required")
	}
	return Prompt{
		System:      system(p),
		User:        fmt.Sprintf("Create a joke about %s in the style of %s.", topic, p.Name),
		MaxTokens:   jokeMaxTokens,
		Temperature: temperature,
	}, nil
}

// Revision renders the prompt asking persona p to rework originalJoke so it
// addresses feedback. topic is optional context.
func Revision(p persona.Persona, originalJoke, feedback, topic string) (Prompt, error) {
	originalJoke, feedback = strings.TrimSpace(originalJoke), strings.TrimSpace(feedback)
	switch {
	case originalJoke == "":
		return Prompt{}, apperr.Invalid("Original joke is required")
	case feedback == "":
		return Prompt{}, apperr.Invalid("Feedback is required")
	}

	var b strings.Builder
	if topic = strings.TrimSpace(topic); topic != "" {
		fmt.Fprintf(&b, "Here's a joke about %s in the style of %s: %q\n\n", topic, p.Name, originalJoke)
	} else {
		fmt.Fprintf(&b, "Here's a joke in the style of %s: %q\n\n", p.Name, originalJoke)
	}
	fmt.Fprintf(&b, "User feedback: %q\n\n", feedback)
	fmt.Fprintf(&b, "Please create a new version of this joke that addresses the feedback while maintaining %s's style: %s", p.Name, p.Style)

	return Prompt{
		System:      system(p),
		User:        b.String(),
		MaxTokens:   jokeMaxTokens,
		Temperature: temperature,
	}, nil
}

var analysisHints = map[analysis.Section]string{
	analysis.Setup:               "Identify the setup/premise of the joke",
	analysis.Punchline:           "Identify the punchline and how it works",
	analysis.StyleElements:       "List the key style elements used from %s's style",
	analysis.Strengths:           "List 2-3 strengths of the joke",
	analysis.Improvements:        "List 2-3 ways the joke could be improved",
	analysis.FeedbackSuggestions: "List 3-4 specific types of feedback the user could provide to modify the joke, one per line, numbered",
}

// Analysis renders the prompt asking for a six-part critique of joke. The
// section labels are the ones analysis.Parse recognizes.
func Analysis(p persona.Persona, joke string) (Prompt, error) {
	joke = strings.TrimSpace(joke)
	if joke == "" {
		return Prompt{}, apperr.Invalid("Joke is required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this joke in the style of %s: %q\n\n", p.Name, joke)
	b.WriteString("Please provide a detailed analysis in the following format, with exactly these six numbered sections in this order, separated by blank lines:\n\n")
	for i, s := range analysis.Sections {
		hint := analysisHints[s]
		if strings.Contains(hint, "%s") {
			hint = fmt.Sprintf(hint, p.Name)
		}
		fmt.Fprintf(&b, "%d. %s: [%s]\n\n", i+1, s.Label(), hint)
	}
	b.WriteString("Use the labels exactly as written and do not add any other sections.")

	return Prompt{
		System:      analysisSystem,
		User:        b.String(),
		MaxTokens:   analysisMaxTokens,
		Temperature: temperature,
	}, nil
}

func system(p persona.Persona) string {
	return fmt.Sprintf(personaSystem, p.Name, p.Style, p.Directive, strings.Join(p.Examples, ExampleSeparator))
}
